package openrouter

import (
	"fmt"

	"github.com/kreumat/nilbel-hackhaton-NAYS/api"
	"github.com/kreumat/nilbel-hackhaton-NAYS/config"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenRouterApiClient embeds the common HTTPClient
type OpenRouterApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey string
	model  string
}

// NewOpenRouterApiClient creates a new instance of OpenRouterApiClient
func NewOpenRouterApiClient(httpClient *api.HTTPClient) *OpenRouterApiClient {
	return &OpenRouterApiClient{
		HTTPClient: httpClient,
		model:      config.OPENROUTER_MODEL,
	}
}

// SetCredentials stores the API key used for the Authorization header. The
// key never leaves the server side.
func (c *OpenRouterApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// CreateChatCompletion sends one system and one user message and returns the
// assistant's free-text reply.
func (c *OpenRouterApiClient) CreateChatCompletion(systemPrompt, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openrouter api key not set")
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"HTTP-Referer":  config.OPENROUTER_SITE_URL,
		"X-Title":       config.OPENROUTER_SITE_NAME,
	}

	request := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	var response chatCompletionResponse
	if err := c.Request("POST", "/chat/completions", headers, request, &response); err != nil {
		return "", err
	}

	if response.Error != nil {
		return "", fmt.Errorf("chat completion error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
