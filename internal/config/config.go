// Package config defines the irtus configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < dotenv file < process environment < explicit
// config file < CLI flag overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/irtus/advisory/internal/ai"
	"github.com/irtus/advisory/internal/model"
)

// WhitelistedVars lists every configuration variable name that may appear in
// config files or the environment. Variables not in this list are silently
// ignored during loading.
var WhitelistedVars = [14]string{
	"AI_PROVIDER",
	"GEMINI_API_KEY",
	"GEMINI_MODEL",
	"GEMINI_BASE_URL",
	"OPENAI_API_KEY",
	"OPENAI_MODEL",
	"OPENAI_BASE_URL",
	"MAX_RETRIES",
	"BASE_DELAY_MS",
	"BACKOFF_CAP_MS",
	"RETRY_POLICY",
	"REQUEST_TIMEOUT",
	"LISTEN_ADDR",
	"VERBOSE",
}

// Retry policies accepted by RETRY_POLICY.
const (
	RetryPolicyAll       = "all"
	RetryPolicyTransient = "transient"
)

// DefaultEnvFile is the dotenv file read when no other is named.
const DefaultEnvFile = ".env"

// Config holds every configuration field for the irtus server and CLI.
type Config struct {
	// Provider selection.
	AIProvider string

	// Gemini settings.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// OpenAI settings.
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Retry policy.
	MaxRetries   int
	BaseDelayMS  int
	BackoffCapMS int    // zero disables the cap
	RetryPolicy  string // "all" or "transient"

	// Timeouts, in seconds. Zero disables the bound.
	RequestTimeout int

	// HTTP server.
	ListenAddr string

	// Runtime flags.
	Verbose bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	EnvFile    string
	Format     string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		AIProvider:     model.Gemini,
		GeminiModel:    ai.DefaultGeminiModel,
		GeminiBaseURL:  ai.DefaultGeminiBaseURL,
		OpenAIModel:    ai.DefaultOpenAIModel,
		MaxRetries:     ai.DefaultMaxRetries,
		BaseDelayMS:    int(ai.DefaultBaseDelay / time.Millisecond),
		RetryPolicy:    RetryPolicyAll,
		RequestTimeout: 0,
		ListenAddr:     ":8080",
		EnvFile:        DefaultEnvFile,
		Format:         "text",
	}
}

// BaseDelay returns the retry base delay as a duration.
func (c *Config) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelayMS) * time.Millisecond
}

// Timeout returns the overall generation bound as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Model returns the model configured for the active provider.
func (c *Config) Model() string {
	if c.AIProvider == model.OpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// APIKey returns the credential configured for the active provider.
func (c *Config) APIKey() string {
	if c.AIProvider == model.OpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// BackoffCap returns the longest wait between attempts, zero meaning none.
func (c *Config) BackoffCap() time.Duration {
	return time.Duration(c.BackoffCapMS) * time.Millisecond
}

// RetryConfig builds the retry policy described by the config.
func (c *Config) RetryConfig() ai.RetryConfig {
	rc := ai.RetryConfig{
		MaxRetries: c.MaxRetries,
		BaseDelay:  c.BaseDelay(),
		Backoff:    ai.Exponential(c.BaseDelay()),
	}
	if c.BackoffCapMS > 0 {
		rc.Backoff = ai.WithCap(rc.Backoff, c.BackoffCap())
	}
	if c.RetryPolicy == RetryPolicyTransient {
		rc.Retryable = ai.RetryTransient
	}
	return rc
}

// Validate checks the assembled configuration. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error

	if !model.IsProvider(c.AIProvider) {
		errs = append(errs, fmt.Errorf("AI_PROVIDER must be one of %s, got %q",
			strings.Join(model.Providers, ", "), c.AIProvider))
	} else if c.APIKey() == "" {
		errs = append(errs, fmt.Errorf("%s_API_KEY is required when AI_PROVIDER=%s",
			strings.ToUpper(c.AIProvider), c.AIProvider))
	}

	if err := model.ValidateModelProvider(model.Gemini, c.GeminiModel, "GEMINI_MODEL"); err != nil {
		errs = append(errs, err)
	}
	if err := model.ValidateModelProvider(model.OpenAI, c.OpenAIModel, "OPENAI_MODEL"); err != nil {
		errs = append(errs, err)
	}

	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("MAX_RETRIES must be >= 0, got %d", c.MaxRetries))
	}
	if c.BaseDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("BASE_DELAY_MS must be > 0, got %d", c.BaseDelayMS))
	}
	if c.BackoffCapMS < 0 {
		errs = append(errs, fmt.Errorf("BACKOFF_CAP_MS must be >= 0, got %d", c.BackoffCapMS))
	}
	switch c.RetryPolicy {
	case RetryPolicyAll, RetryPolicyTransient:
	default:
		errs = append(errs, fmt.Errorf("RETRY_POLICY must be %s or %s, got %q",
			RetryPolicyAll, RetryPolicyTransient, c.RetryPolicy))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be >= 0, got %d", c.RequestTimeout))
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		errs = append(errs, errors.New("LISTEN_ADDR must not be empty"))
	}

	switch c.Format {
	case "text", "json", "markdown":
	default:
		errs = append(errs, fmt.Errorf("format must be text, json or markdown, got %q", c.Format))
	}

	return errors.Join(errs...)
}

// MaskSecret hides all but the last four characters of a credential.
func MaskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}
