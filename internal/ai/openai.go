package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// DefaultOpenAIModel is used when OPENAI_MODEL is unset.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIConfig holds connection settings for the OpenAI chat API.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // blank keeps the library default
	Model   string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// OpenAIClient implements Completer with a strict JSON-schema chat completion.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates an OpenAI client, filling blank settings with defaults.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		oc.BaseURL = base
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	} else {
		oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(oc),
		model:  model,
	}
}

// Name implements Completer.
func (c *OpenAIClient) Name() string { return ProviderOpenAI }

// Model returns the model the client calls.
func (c *OpenAIClient) Model() string { return c.model }

// DeckResponseFormat is the deck shape declared to OpenAI.
func DeckResponseFormat() *openai.ChatCompletionResponseFormat {
	str := jsonschema.Definition{Type: jsonschema.String}
	slide := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"title":            str,
			"subtitle":         str,
			"bulletPoints":     {Type: jsonschema.Array, Items: &str},
			"strategicInsight": str,
		},
	}
	deck := &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"slides":          {Type: jsonschema.Array, Items: &slide},
			"advisorySummary": str,
		},
		Required: []string{"slides", "advisorySummary"},
	}
	return &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:        "pitch_deck",
			Description: "Pitch deck slides and an advisory summary",
			Schema:      deck,
		},
	}
}

// BuildRequest assembles the chat completion request for req.
func (c *OpenAIClient) BuildRequest(req Request) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})
	return openai.ChatCompletionRequest{
		Model:          c.model,
		Messages:       messages,
		ResponseFormat: DeckResponseFormat(),
	}
}

// Complete sends one chat completion and returns choices[0].message.content.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.BuildRequest(req))
	if err != nil {
		return "", openAITransportError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &EmptyResponseError{Reason: "no choices"}
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &EmptyResponseError{Reason: "first choice has no content"}
	}
	return content, nil
}

func openAITransportError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &TransportError{StatusCode: apiErr.HTTPStatusCode, Body: truncate(apiErr.Message, maxErrorBody), Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &TransportError{StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &TransportError{Err: fmt.Errorf("openai: %w", err)}
}
