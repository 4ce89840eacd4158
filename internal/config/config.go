// README: Config loader with env defaults for HTTP, places lookup, and text generation settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Env  string
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	Places struct {
		APIKey   string
		Language string
	}
	AI              AIConfig
	UpstreamTimeout time.Duration
	ParallelLookups bool

	// TransitEstimates adds Directions API leg estimates to composed routes.
	TransitEstimates bool
}

// AIConfig selects the text generation backend and its credentials.
type AIConfig struct {
	Provider      string
	GeminiKey     string
	GeminiModel   string
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

// Development reports whether APP_ENV selects the local profile.
func (c Config) Development() bool {
	return c.Env == "" || c.Env == "development"
}

// Load reads the process environment. Missing credentials are an error, not a panic.
func Load() (Config, error) {
	cfg, err := load()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadGeneration is Load for tools that only call the text generator.
// GOOGLE_API_KEY is not required.
func LoadGeneration() (Config, error) {
	cfg, err := load()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.AI.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ECO_HTTP_ADDR", ":8080")
	v.SetDefault("ECO_CORS_ORIGINS", "*")
	v.SetDefault("ECO_PLACES_LANGUAGE", "ko")
	v.SetDefault("ECO_AI_PROVIDER", ProviderGemini)
	v.SetDefault("ECO_UPSTREAM_TIMEOUT", "20s")
	v.SetDefault("ECO_PARALLEL_LOOKUPS", false)
	v.SetDefault("ECO_TRANSIT_ESTIMATES", false)

	var cfg Config
	cfg.Env = v.GetString("APP_ENV")
	cfg.HTTP.Addr = v.GetString("ECO_HTTP_ADDR")
	cfg.HTTP.CORSOrigins = splitList(v.GetString("ECO_CORS_ORIGINS"))
	cfg.Places.APIKey = strings.TrimSpace(v.GetString("GOOGLE_API_KEY"))
	cfg.Places.Language = v.GetString("ECO_PLACES_LANGUAGE")
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(v.GetString("ECO_AI_PROVIDER")))
	cfg.AI.GeminiKey = strings.TrimSpace(v.GetString("GEMINI_API_KEY"))
	cfg.AI.GeminiModel = v.GetString("ECO_GEMINI_MODEL")
	cfg.AI.OpenAIKey = strings.TrimSpace(v.GetString("OPENAI_API_KEY"))
	cfg.AI.OpenAIModel = v.GetString("ECO_OPENAI_MODEL")
	cfg.AI.OpenAIBaseURL = v.GetString("ECO_OPENAI_BASE_URL")
	cfg.ParallelLookups = v.GetBool("ECO_PARALLEL_LOOKUPS")
	cfg.TransitEstimates = v.GetBool("ECO_TRANSIT_ESTIMATES")

	timeout, err := time.ParseDuration(v.GetString("ECO_UPSTREAM_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ECO_UPSTREAM_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, errors.New("ECO_UPSTREAM_TIMEOUT must be positive")
	}
	cfg.UpstreamTimeout = timeout
	return cfg, nil
}

func (c Config) validate() error {
	if c.Places.APIKey == "" {
		return errors.New("environment variable GOOGLE_API_KEY is required")
	}
	return c.AI.validate()
}

func (c AIConfig) validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.GeminiKey == "" {
			return errors.New("environment variable GEMINI_API_KEY is required")
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return errors.New("environment variable OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown ECO_AI_PROVIDER %q (want %s or %s)", c.Provider, ProviderGemini, ProviderOpenAI)
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
