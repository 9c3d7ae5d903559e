package openrouter

import "fmt"

// OpenRouterApiClientMock embeds mocked logic for the chat completion client.
type OpenRouterApiClientMock struct {
	// Reply overrides the canned response when set.
	Reply string
	// Err makes every call fail when set.
	Err error
}

// NewOpenRouterApiClientMock creates a new instance of OpenRouterApiClientMock
func NewOpenRouterApiClientMock() *OpenRouterApiClientMock {
	return &OpenRouterApiClientMock{}
}

func (c *OpenRouterApiClientMock) SetCredentials(apiKey string) {}

func (c *OpenRouterApiClientMock) CreateChatCompletion(systemPrompt, userMessage string) (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	if c.Reply != "" {
		return c.Reply, nil
	}
	return fmt.Sprintf("Mock yanıt: %q sorunuzu aldım.", userMessage), nil
}
