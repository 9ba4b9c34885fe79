package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// LoadFile parses a dotenv-style KEY=VALUE config file at the given path.
//
// Comments, blank lines, quoted values and "export" prefixes follow dotenv
// rules. Keys not present in WhitelistedVars are silently ignored.
//
// Returns a map of whitelisted key-value pairs, or an error if the file
// cannot be opened or parsed.
func LoadFile(path string) (map[string]string, error) {
	raw, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	result := make(map[string]string, len(raw))
	for key, value := range raw {
		key = strings.TrimSpace(key)
		if !whitelistSet[key] {
			continue
		}
		result[key] = strings.TrimSpace(value)
	}
	return result, nil
}

// LoadEnv collects whitelisted variables from lookup, normally os.LookupEnv.
// Variables that are set but empty are skipped.
func LoadEnv(lookup func(string) (string, bool)) map[string]string {
	result := make(map[string]string)
	for _, key := range WhitelistedVars {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			result[key] = strings.TrimSpace(v)
		}
	}
	return result
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Dotenv file (envPath, missing file is not an error)
//  3. Process environment
//  4. Explicit config file (explicitPath, must exist if specified)
//  5. CLI overrides (cliOverrides map)
//
// Any path that is empty is silently skipped.
func LoadWithPrecedence(envPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	// Layer 2: dotenv file.
	if envPath != "" {
		m, err := LoadFile(envPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("env file: %w", err)
			}
			// Missing dotenv file is not an error.
		} else {
			ApplyMapToConfig(cfg, m)
		}
		cfg.EnvFile = envPath
	}

	// Layer 3: process environment.
	ApplyMapToConfig(cfg, LoadEnv(os.LookupEnv))

	// Layer 4: explicit config file.
	if explicitPath != "" {
		m, err := LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		ApplyMapToConfig(cfg, m)
		cfg.ConfigFile = explicitPath
	}

	// Layer 5: CLI overrides (highest priority).
	if len(cliOverrides) > 0 {
		ApplyMapToConfig(cfg, cliOverrides)
	}

	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "AI_PROVIDER").
// Unknown keys are silently ignored. Integer fields that fail to parse
// are silently ignored (the previous value is preserved).
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "AI_PROVIDER":
			cfg.AIProvider = strings.ToLower(value)
		case "GEMINI_API_KEY":
			cfg.GeminiAPIKey = value
		case "GEMINI_MODEL":
			cfg.GeminiModel = value
		case "GEMINI_BASE_URL":
			cfg.GeminiBaseURL = value
		case "OPENAI_API_KEY":
			cfg.OpenAIAPIKey = value
		case "OPENAI_MODEL":
			cfg.OpenAIModel = value
		case "OPENAI_BASE_URL":
			cfg.OpenAIBaseURL = value
		case "MAX_RETRIES":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxRetries = v
			}
		case "BASE_DELAY_MS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.BaseDelayMS = v
			}
		case "BACKOFF_CAP_MS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.BackoffCapMS = v
			}
		case "RETRY_POLICY":
			cfg.RetryPolicy = strings.ToLower(strings.TrimSpace(value))
		case "REQUEST_TIMEOUT":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.RequestTimeout = v
			}
		case "LISTEN_ADDR":
			cfg.ListenAddr = value
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		}
	}
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
