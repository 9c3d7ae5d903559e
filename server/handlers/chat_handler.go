package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
	services "github.com/kreumat/nilbel-hackhaton-NAYS/service"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// PostChat handles POST /v1/chat.
// Provider failures come back as an inline "error" transcript entry with
// status 200; only malformed requests produce an HTTP error.
func (h *ChatHandler) PostChat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(request.Message)
	if message == "" {
		http.Error(w, "Message must not be empty", http.StatusBadRequest)
		return
	}

	reply := h.chatService.Reply(request.ConversationID, message)
	writeJSON(w, reply)
}
