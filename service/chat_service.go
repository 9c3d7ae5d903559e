package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kreumat/nilbel-hackhaton-NAYS/api/openrouter"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
)

// chatErrorMessage is the inline transcript entry shown when the completion
// provider fails. Failures never surface as transport errors to the caller.
const chatErrorMessage = "Bağlantı hatası oluştu. Lütfen tekrar deneyin."

// ChatService proxies visitor questions to the chat completion provider,
// injecting the live venue context into the system prompt.
type ChatService struct {
	chatAPI      openrouter.ChatCompletionAPI
	venueService *VenueService
}

// NewChatService constructs a new ChatService with its dependencies.
func NewChatService(chatAPI openrouter.ChatCompletionAPI, venueService *VenueService) *ChatService {
	return &ChatService{
		chatAPI:      chatAPI,
		venueService: venueService,
	}
}

// Reply answers one visitor utterance. A missing conversation ID starts a
// new conversation.
func (cs *ChatService) Reply(conversationID, message string) models.ChatReply {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	systemPrompt := buildSystemPrompt(cs.venueService.VenueContextForAI())

	content, err := cs.chatAPI.CreateChatCompletion(systemPrompt, message)
	if err != nil {
		log.Printf("[ChatService] Chat completion failed: %v", err)
		return models.ChatReply{
			ConversationID: conversationID,
			Role:           "error",
			Content:        chatErrorMessage,
		}
	}

	return models.ChatReply{
		ConversationID: conversationID,
		Role:           "ai",
		Content:        content,
	}
}

func buildSystemPrompt(venueContext string) string {
	return fmt.Sprintf(`Sen NAYS (Nilüfer Akıllı Yoğunluk Sistemi) asistanısın. Vatandaşlara mekan bulmalarında yardımcı olursun.

%s

KURALLAR:
1. KISA cevaplar ver (2-3 cümle MAX). Uzun açıklamalar YAPMA.
2. Sadece sorulana cevap ver, gereksiz bilgi verme.
3. Doluluk verileri haftalık ortalamadır.
4. Kapalı mekanlara açılış saatini söyle.
5. Türkçe konuş, samimi ol, resmi olma.
6. "En boş yer?" diye sorulursa en düşük doluluklu AÇIK mekanı öner.
7. Markdown formatı (**, ##, vb.) KULLANMA.`, venueContext)
}
