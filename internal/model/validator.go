package model

import (
	"fmt"
	"regexp"
	"strings"
)

// openAIModelRe matches OpenAI-family model prefixes: o1, o3, gpt-*, etc.
var openAIModelRe = regexp.MustCompile(`^(o[0-9]|gpt|chatgpt|text|ft|gpt4)`)

// geminiModelHints are lower-cased prefixes that strongly indicate a
// Gemini-compatible model.
var geminiModelHints = []string{"gemini-", "gemma-", "models/gemini"}

// ValidateModelProvider checks whether model is compatible with the chosen
// provider. label is a human-readable name for the setting being
// validated (e.g. "gemini-model") used in error messages.
//
// Rules:
//   - Empty model is always allowed (the caller will apply defaults).
//   - Gemini-style hints (gemini-*, gemma-*) are invalid with openai.
//   - OpenAI-style hints (o[0-9]*, gpt*, chatgpt*, text*, ft*) are
//     invalid with gemini.
//   - Anything else is accepted without opinion.
func ValidateModelProvider(provider, model, label string) error {
	if model == "" {
		return nil
	}

	if provider == OpenAI && IsGeminiModelHint(model) {
		return fmt.Errorf("%s %q looks like a gemini model but provider=%s", label, model, provider)
	}

	if provider == Gemini && IsOpenAIModelHint(model) {
		return fmt.Errorf("%s %q looks like an openai model but provider=%s", label, model, provider)
	}

	return nil
}

// IsGeminiModelHint returns true when model appears to target the Gemini
// API (gemini-*, gemma-* or a models/ resource name).
func IsGeminiModelHint(model string) bool {
	lower := strings.ToLower(model)
	for _, hint := range geminiModelHints {
		if strings.HasPrefix(lower, hint) {
			return true
		}
	}
	return false
}

// IsOpenAIModelHint returns true when model appears to target an OpenAI
// backend (o1, o3, gpt-*, chatgpt-*, etc.).
func IsOpenAIModelHint(model string) bool {
	return openAIModelRe.MatchString(strings.ToLower(model))
}
