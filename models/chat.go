package models

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Message        string `json:"message"`
}

// ChatReply is a single transcript entry returned to the caller. Role is
// "ai" for a normal assistant reply and "error" for an inline failure
// message, mirroring how the dashboard renders the transcript.
type ChatReply struct {
	ConversationID string `json:"conversation_id"`
	Role           string `json:"role"`
	Content        string `json:"content"`
}
