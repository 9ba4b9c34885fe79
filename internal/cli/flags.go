// Package cli provides flag binding and validation for the irtus CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/irtus/advisory/internal/config"
	"github.com/irtus/advisory/internal/model"
	"github.com/irtus/advisory/internal/venture"
)

// Output formats accepted by the generate command.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// BindFlags registers the flags shared by every subcommand as persistent
// flags on cmd. The flags directly modify fields in the provided config
// pointer. Call ValidateFlags after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()

	// Provider & Models
	flags.StringVar(&cfg.AIProvider, "provider", cfg.AIProvider, "Generation provider: gemini or openai")
	flags.StringVar(&cfg.GeminiModel, "gemini-model", cfg.GeminiModel, "Gemini model name")
	flags.StringVar(&cfg.GeminiBaseURL, "gemini-base-url", cfg.GeminiBaseURL, "Gemini API base URL")
	flags.StringVar(&cfg.OpenAIModel, "openai-model", cfg.OpenAIModel, "OpenAI model name")
	flags.StringVar(&cfg.OpenAIBaseURL, "openai-base-url", cfg.OpenAIBaseURL, "OpenAI-compatible API base URL")

	// Retry Policy
	flags.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Retries after the first attempt")
	flags.IntVar(&cfg.BaseDelayMS, "base-delay-ms", cfg.BaseDelayMS, "Backoff base delay in milliseconds")
	flags.IntVar(&cfg.BackoffCapMS, "backoff-cap-ms", cfg.BackoffCapMS, "Longest wait between attempts in milliseconds (0 = no cap)")
	flags.StringVar(&cfg.RetryPolicy, "retry-policy", cfg.RetryPolicy, "Which failures are retried: all or transient")
	flags.IntVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Seconds before a generation is abandoned (0 = none)")

	// Config Files
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
	flags.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Path to dotenv file")

	// Feature Toggles
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")
}

// BindServeFlags registers the flags of the serve command.
func BindServeFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVarP(&cfg.ListenAddr, "listen", "l", cfg.ListenAddr, "HTTP listen address")
}

// GenerateFlags holds the venture input given on the command line.
type GenerateFlags struct {
	Input     venture.VentureInput
	InputFile string
}

// BindGenerateFlags registers the flags of the generate command.
func BindGenerateFlags(cmd *cobra.Command, cfg *config.Config, gf *GenerateFlags) {
	flags := cmd.Flags()

	// Venture Input
	flags.StringVar(&gf.Input.CompanyName, "company-name", "", "Company name (required)")
	flags.StringVar(&gf.Input.Problem, "problem", "", "Problem the company solves (required)")
	flags.StringVar(&gf.Input.Solution, "solution", "", "The company's solution")
	flags.StringVar(&gf.Input.TargetMarket, "target-market", "", "Target market")
	flags.StringVar(&gf.Input.RevenueModel, "revenue-model", "", "How the company makes money")
	flags.StringVarP(&gf.InputFile, "input", "i", "", "JSON file with the venture input (flags override its fields)")

	// Output
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: text, json or markdown")
}

// ResolveInput returns the venture input from --input, with any explicitly
// set field flags layered on top.
func (gf *GenerateFlags) ResolveInput(cmd *cobra.Command) (venture.VentureInput, error) {
	var in venture.VentureInput
	if gf.InputFile != "" {
		data, err := os.ReadFile(gf.InputFile)
		if err != nil {
			return in, fmt.Errorf("--input: %w", err)
		}
		if err := json.Unmarshal(data, &in); err != nil {
			return in, fmt.Errorf("--input: parse %s: %w", gf.InputFile, err)
		}
	}

	fieldFlags := map[string]string{
		"company-name":  venture.FieldCompanyName,
		"problem":       venture.FieldProblem,
		"solution":      venture.FieldSolution,
		"target-market": venture.FieldTargetMarket,
		"revenue-model": venture.FieldRevenueModel,
	}
	for flag, field := range fieldFlags {
		if cmd.Flags().Changed(flag) {
			if err := in.Set(field, gf.Input.Get(field)); err != nil {
				return in, err
			}
		}
	}
	return in, nil
}

// Overrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func Overrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	// String flags: only include if explicitly set via CLI
	stringFlags := map[string]struct {
		key string
		val string
	}{
		"provider":        {"AI_PROVIDER", cfg.AIProvider},
		"gemini-model":    {"GEMINI_MODEL", cfg.GeminiModel},
		"gemini-base-url": {"GEMINI_BASE_URL", cfg.GeminiBaseURL},
		"openai-model":    {"OPENAI_MODEL", cfg.OpenAIModel},
		"openai-base-url": {"OPENAI_BASE_URL", cfg.OpenAIBaseURL},
		"listen":          {"LISTEN_ADDR", cfg.ListenAddr},
		"retry-policy":    {"RETRY_POLICY", cfg.RetryPolicy},
	}
	for flag, mapping := range stringFlags {
		if changed(cmd, flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	// Int flags
	intFlags := map[string]struct {
		key string
		val int
	}{
		"max-retries":     {"MAX_RETRIES", cfg.MaxRetries},
		"base-delay-ms":   {"BASE_DELAY_MS", cfg.BaseDelayMS},
		"backoff-cap-ms":  {"BACKOFF_CAP_MS", cfg.BackoffCapMS},
		"request-timeout": {"REQUEST_TIMEOUT", cfg.RequestTimeout},
	}
	for flag, mapping := range intFlags {
		if changed(cmd, flag) {
			overrides[mapping.key] = fmt.Sprintf("%d", mapping.val)
		}
	}

	// Bool flags
	if changed(cmd, "verbose") {
		if cfg.Verbose {
			overrides["VERBOSE"] = "true"
		} else {
			overrides["VERBOSE"] = "false"
		}
	}

	return overrides
}

// changed reports whether flag exists on cmd and was set explicitly.
func changed(cmd *cobra.Command, flag string) bool {
	f := cmd.Flags().Lookup(flag)
	return f != nil && f.Changed
}

// ValidateFlags checks flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	// --env-file must exist if given explicitly
	if changed(cmd, "env-file") && cfg.EnvFile != "" {
		if _, err := os.Stat(cfg.EnvFile); err != nil {
			return fmt.Errorf("--env-file: %w", err)
		}
	}

	// Validate provider value
	if changed(cmd, "provider") && !model.IsProvider(cfg.AIProvider) {
		return fmt.Errorf("--provider must be one of %s, got: %s", strings.Join(model.Providers, ", "), cfg.AIProvider)
	}

	// Validate output format
	if changed(cmd, "format") {
		switch cfg.Format {
		case FormatText, FormatJSON, FormatMarkdown:
		default:
			return fmt.Errorf("--format must be 'text', 'json' or 'markdown', got: %s", cfg.Format)
		}
	}

	if changed(cmd, "max-retries") && cfg.MaxRetries < 0 {
		return fmt.Errorf("--max-retries must be >= 0, got: %d", cfg.MaxRetries)
	}

	return nil
}
