package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kreumat/nilbel-hackhaton-NAYS/api/openrouter"
)

// recordingChatAPI captures the prompts passed to the provider.
type recordingChatAPI struct {
	systemPrompt string
	userMessage  string
	reply        string
	err          error
}

func (r *recordingChatAPI) SetCredentials(apiKey string) {}

func (r *recordingChatAPI) CreateChatCompletion(systemPrompt, userMessage string) (string, error) {
	r.systemPrompt = systemPrompt
	r.userMessage = userMessage
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

func TestChatService_Reply_Success(t *testing.T) {
	chatAPI := &recordingChatAPI{reply: "Kütüphane şu an rahat."}
	vs := NewVenueService(testVenues(), testClock())
	cs := NewChatService(chatAPI, vs)

	reply := cs.Reply("", "En boş yer neresi?")

	assert.Equal(t, "ai", reply.Role)
	assert.Equal(t, "Kütüphane şu an rahat.", reply.Content)
	if reply.ConversationID == "" {
		t.Errorf("Expected a generated conversation ID")
	}

	// The system prompt must carry the rules and the venue context.
	if !strings.Contains(chatAPI.systemPrompt, "NAYS") {
		t.Errorf("Expected system prompt to mention NAYS, got %q", chatAPI.systemPrompt)
	}
	if !strings.Contains(chatAPI.systemPrompt, "MEKAN DURUMU") {
		t.Errorf("Expected system prompt to carry venue context, got %q", chatAPI.systemPrompt)
	}
	assert.Equal(t, "En boş yer neresi?", chatAPI.userMessage)
}

func TestChatService_Reply_KeepsConversationID(t *testing.T) {
	cs := NewChatService(&recordingChatAPI{reply: "ok"}, NewVenueService(nil, testClock()))

	reply := cs.Reply("conv-42", "merhaba")

	assert.Equal(t, "conv-42", reply.ConversationID)
}

func TestChatService_Reply_FailureSurfacesInlineError(t *testing.T) {
	chatAPI := &recordingChatAPI{err: fmt.Errorf("upstream down")}
	cs := NewChatService(chatAPI, NewVenueService(testVenues(), testClock()))

	reply := cs.Reply("conv-1", "merhaba")

	assert.Equal(t, "error", reply.Role)
	assert.Equal(t, "Bağlantı hatası oluştu. Lütfen tekrar deneyin.", reply.Content)
	assert.Equal(t, "conv-1", reply.ConversationID)
}

func TestChatService_Reply_UsesMockProvider(t *testing.T) {
	cs := NewChatService(openrouter.NewOpenRouterApiClientMock(), NewVenueService(testVenues(), testClock()))

	reply := cs.Reply("", "merhaba")

	assert.Equal(t, "ai", reply.Role)
	if reply.Content == "" {
		t.Errorf("Expected a non-empty mock reply")
	}
}
