package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config holds client construction settings. The API key is not part of it:
// credentials are supplied per call by the caller's session.
type Config struct {
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate fills defaults and checks the configuration.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("gemini: invalid API URL %q", c.APIURL)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Options are per-request generation settings. Nil pointers are omitted from the request.
type Options struct {
	Model           string
	Temperature     *float64
	MaxOutputTokens *int
}

// Result is a successful generation: the untouched response body.
type Result struct {
	Raw    []byte
	Status int
}

// ErrNoAPIKey is returned before any network activity when the key is empty.
var ErrNoAPIKey = errors.New("no API key provided")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Body)
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
}
