// Package model provides AI-model helpers for the irtus service.
//
// It centralises default model names per provider, provider name
// validation, and checks that a requested model is compatible with the
// chosen provider (gemini or openai).
package model

import (
	"github.com/irtus/advisory/internal/ai"
)

// Provider identifiers used throughout the service.
const (
	Gemini = ai.ProviderGemini
	OpenAI = ai.ProviderOpenAI
)

// Providers lists every supported provider in display order.
var Providers = []string{Gemini, OpenAI}

// DefaultModel returns the default generation model for the given provider.
func DefaultModel(provider string) string {
	if provider == OpenAI {
		return ai.DefaultOpenAIModel
	}
	return ai.DefaultGeminiModel
}

// IsProvider reports whether name is a supported provider.
func IsProvider(name string) bool {
	for _, p := range Providers {
		if p == name {
			return true
		}
	}
	return false
}
