package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- ValidateModelProvider ----------

func TestValidateModelProvider_EmptyModelAlwaysOK(t *testing.T) {
	assert.NoError(t, ValidateModelProvider(Gemini, "", "gemini-model"))
	assert.NoError(t, ValidateModelProvider(OpenAI, "", "openai-model"))
}

func TestValidateModelProvider_GeminiWithGeminiModels(t *testing.T) {
	for _, m := range []string{"gemini-2.5-flash-preview-09-2025", "gemini-1.5-pro", "gemma-3-27b-it"} {
		assert.NoError(t, ValidateModelProvider(Gemini, m, "gemini-model"),
			"gemini + %q should be ok", m)
	}
}

func TestValidateModelProvider_OpenAIWithOpenAIModels(t *testing.T) {
	for _, m := range []string{"o1", "o3-mini", "gpt-4o-mini", "gpt4o", "chatgpt-4o-latest"} {
		assert.NoError(t, ValidateModelProvider(OpenAI, m, "openai-model"),
			"openai + %q should be ok", m)
	}
}

func TestValidateModelProvider_OpenAIWithGeminiModel_Error(t *testing.T) {
	err := ValidateModelProvider(OpenAI, "gemini-1.5-pro", "openai-model")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini")
	assert.Contains(t, err.Error(), "openai-model")
}

func TestValidateModelProvider_GeminiWithOpenAIModel_Error(t *testing.T) {
	for _, m := range []string{"gpt-4o", "o3-mini"} {
		err := ValidateModelProvider(Gemini, m, "gemini-model")
		require.Error(t, err, "gemini + %q should fail", m)
		assert.Contains(t, err.Error(), "openai")
	}
}

func TestValidateModelProvider_UnknownModelAccepted(t *testing.T) {
	assert.NoError(t, ValidateModelProvider(Gemini, "my-tuned-model", "gemini-model"))
	assert.NoError(t, ValidateModelProvider(OpenAI, "my-tuned-model", "openai-model"))
}

// ---------- Hints ----------

func TestIsGeminiModelHint(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"gemini-2.5-flash", true},
		{"GEMINI-PRO", true},
		{"models/gemini-1.5-pro", true},
		{"gemma-2-9b", true},
		{"gpt-4o", false},
		{"custom", false},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGeminiModelHint(tt.model))
		})
	}
}

func TestIsOpenAIModelHint(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"gpt-4o-mini", true},
		{"o1", true},
		{"o3-mini", true},
		{"chatgpt-4o-latest", true},
		{"ft:gpt-3.5-turbo", true},
		{"gemini-pro", false},
		{"custom", false},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpenAIModelHint(tt.model))
		})
	}
}
