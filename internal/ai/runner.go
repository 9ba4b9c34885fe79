package ai

import (
	"context"
)

// Provider identifiers accepted by the AI_PROVIDER setting.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Request is one deck-generation prompt.
type Request struct {
	SystemInstruction string
	Prompt            string
}

// Completer sends a single generation request and returns the raw text of
// the first candidate. Implementations declare the deck response schema to
// their service and never retry on their own.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}
