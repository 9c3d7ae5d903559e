package openrouter

// ChatCompletionAPI defines the interface for the hosted chat completion
// provider. The system prompt carries the rendered venue-status snapshot;
// the user message is the visitor's utterance.
type ChatCompletionAPI interface {
	CreateChatCompletion(systemPrompt, userMessage string) (string, error)
	SetCredentials(apiKey string)
}
