package genai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient serves any OpenAI-compatible chat-completions endpoint,
// selectable through the provider factory as an alternative to Gemini.
type OpenAIClient struct {
	client      *openai.Client
	apiKey      string
	model       string
	temperature float32
}

// NewOpenAIClient creates a client for an OpenAI-compatible API. baseURL may
// be empty for the official endpoint.
func NewOpenAIClient(apiKey, baseURL, model string, temperature float64) *OpenAIClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	if temperature <= 0 {
		temperature = 0.7
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(cfg),
		apiKey:      apiKey,
		model:       model,
		temperature: float32(temperature),
	}
}

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return "", &GenerationError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &GenerationError{Provider: "openai", Err: fmt.Errorf("empty response from API")}
	}

	return resp.Choices[0].Message.Content, nil
}

// IsConfigured returns true if the client has an API key.
func (c *OpenAIClient) IsConfigured() bool {
	return c.apiKey != ""
}
