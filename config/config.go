package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverJSONFile = "jsonfile"
	StoreDriverSQLite   = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Todo assistant specifics
	Store          StoreConfig
	Assistant      AssistantConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	CORSOrigins []string // empty allows any origin
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StoreConfig struct {
	Driver string // jsonfile or sqlite
	Path   string // JSON document path, or SQLite DSN
}

// AssistantConfig configures the natural-language task assistant.
// APIKey is only a default: callers may send their own key per request.
type AssistantConfig struct {
	APIKey          string
	APIURL          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	Timezone        string
	BatchTTL        time.Duration
	BatchSize       int
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/todo-assistant/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/todo-assistant/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.CORSOrigins = v.GetStringSlice("http_server.cors_origins")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Store
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Store.Path = v.GetString("store.path")
	if storePath := v.GetString("store_path"); storePath != "" {
		cfg.Store.Path = storePath
	}

	// Assistant
	cfg.Assistant.APIKey = expandEnvVar(v, v.GetString("assistant.api_key"))
	if geminiKey := v.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Assistant.APIKey = geminiKey
	}
	cfg.Assistant.APIURL = v.GetString("assistant.api_url")
	cfg.Assistant.Model = v.GetString("assistant.model")
	cfg.Assistant.Temperature = v.GetFloat64("assistant.temperature")
	cfg.Assistant.MaxOutputTokens = v.GetInt("assistant.max_output_tokens")
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")
	cfg.Assistant.BatchTTL = v.GetDuration("assistant.batch_ttl")
	cfg.Assistant.BatchSize = v.GetInt("assistant.batch_size")
	cfg.Assistant.RateLimitPerMin = v.GetInt("assistant.rate_limit_per_min")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("store.driver", StoreDriverJSONFile)
	v.SetDefault("store.path", "data/tasks_v1.json")

	v.SetDefault("assistant.model", "gemini-2.0-flash")
	v.SetDefault("assistant.temperature", 0)
	v.SetDefault("assistant.max_output_tokens", 2048)
	v.SetDefault("assistant.timezone", "Local")
	v.SetDefault("assistant.batch_ttl", "30m")
	v.SetDefault("assistant.batch_size", 256)
	v.SetDefault("assistant.rate_limit_per_min", 30)

	v.SetDefault("google_calendar.calendar_id", "primary")
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverJSONFile, StoreDriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q (want %s or %s)", c.Store.Driver, StoreDriverJSONFile, StoreDriverSQLite)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Assistant.MaxOutputTokens <= 0 {
		return fmt.Errorf("assistant.max_output_tokens must be positive")
	}
	if c.Assistant.BatchTTL <= 0 {
		return fmt.Errorf("assistant.batch_ttl must be positive")
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	// Try direct os.Getenv as last resort
	return os.Getenv(envVar)
}
