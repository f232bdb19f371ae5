package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultGeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGeminiModel  = "gemini-1.5-flash"
	defaultMaxTokens    = 1024
	defaultTopP         = 0.95
	defaultTopK         = 40
)

// GeminiClient talks to the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey      string
	model       string
	apiURL      string
	temperature float64
	httpClient  *http.Client
}

// NewGeminiClient creates a Gemini API client.
func NewGeminiClient(apiKey, model string, temperature float64) *GeminiClient {
	if model == "" {
		model = defaultGeminiModel
	}
	if temperature <= 0 {
		temperature = 0.7
	}

	return &GeminiClient{
		apiKey:      apiKey,
		model:       model,
		apiURL:      defaultGeminiAPIURL,
		temperature: temperature,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt to the generateContent endpoint and returns the
// first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.temperature,
			TopP:            defaultTopP,
			TopK:            defaultTopK,
			MaxOutputTokens: defaultMaxTokens,
		},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &GenerationError{Provider: "gemini", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Provider: "gemini", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body)),
		}
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", &GenerationError{Provider: "gemini", Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	if apiResp.Error != nil {
		return "", &GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("API error: %s - %s", apiResp.Error.Status, apiResp.Error.Message),
		}
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", &GenerationError{Provider: "gemini", Err: fmt.Errorf("empty response from API")}
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

// IsConfigured returns true if the client has an API key.
func (c *GeminiClient) IsConfigured() bool {
	return c.apiKey != ""
}
