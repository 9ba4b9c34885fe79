package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Gemini defaults.
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-2.5-flash-preview-09-2025"
)

// GeminiConfig holds connection settings for the Gemini REST API.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// DefaultGeminiConfig returns the production endpoint and model.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: DefaultGeminiBaseURL,
		Model:   DefaultGeminiModel,
	}
}

// GeminiClient implements Completer against generateContent.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGeminiClient creates a Gemini client, filling blank settings with defaults.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultGeminiModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
	}
}

// Name implements Completer.
func (c *GeminiClient) Name() string { return ProviderGemini }

// Model returns the model the client calls.
func (c *GeminiClient) Model() string { return c.model }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType"`
	ResponseSchema   map[string]interface{} `json:"responseSchema"`
}

// GeminiRequest is the generateContent request body.
type GeminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

// geminiResponse covers the fields read from a generateContent reply.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// DeckResponseSchema is the structured-output schema declared to Gemini, in
// its OpenAPI-subset dialect.
func DeckResponseSchema() map[string]interface{} {
	str := map[string]interface{}{"type": "STRING"}
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"slides": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"title":            str,
						"subtitle":         str,
						"bulletPoints":     map[string]interface{}{"type": "ARRAY", "items": str},
						"strategicInsight": str,
					},
				},
			},
			"advisorySummary": str,
		},
	}
}

// BuildRequest assembles the generateContent body for req.
func (c *GeminiClient) BuildRequest(req Request) GeminiRequest {
	body := GeminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   DeckResponseSchema(),
		},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction}},
		}
	}
	return body
}

// Endpoint returns the generateContent URL including the API key.
func (c *GeminiClient) Endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}

// Complete sends one generateContent request and returns the text of
// candidates[0].content.parts[0].
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	payload, err := json.Marshal(c.BuildRequest(req))
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: redactKey(err, c.apiKey)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	var decoded geminiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response envelope: %w", err)}
	}

	if len(decoded.Candidates) == 0 {
		return "", &EmptyResponseError{Reason: "no candidates"}
	}
	parts := decoded.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", &EmptyResponseError{Reason: "first candidate has no text"}
	}
	return parts[0].Text, nil
}

// redactKey keeps the API key out of errors that echo the request URL.
// The original error stays reachable through Unwrap.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	msg := err.Error()
	redacted := strings.ReplaceAll(msg, url.QueryEscape(key), "REDACTED")
	redacted = strings.ReplaceAll(redacted, key, "REDACTED")
	if redacted == msg {
		return err
	}
	return &redactedError{msg: redacted, err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
