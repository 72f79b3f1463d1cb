package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type geminiImpl struct {
	apiURL     string
	httpClient *http.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// Generate posts a single-turn generateContent request. The body is returned as-is;
// callers decide how to read it.
func (g *geminiImpl) Generate(ctx context.Context, apiKey, prompt string, opts Options) (Result, error) {
	if apiKey == "" {
		return Result{}, ErrNoAPIKey
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.apiURL, url.PathEscape(model))

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if opts.Temperature != nil || opts.MaxOutputTokens != nil {
		req.GenerationConfig = &generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Status: resp.StatusCode}, fmt.Errorf("gemini: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Raw: raw, Status: resp.StatusCode}, &APIError{Status: resp.StatusCode, Body: string(raw)}
	}
	return Result{Raw: raw, Status: resp.StatusCode}, nil
}
