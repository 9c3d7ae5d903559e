package openrouter

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kreumat/nilbel-hackhaton-NAYS/api"
)

func TestCreateChatCompletion_Success(t *testing.T) {
	var received map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions; got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q; want 'Bearer secret'", got)
		}

		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &received)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Kütüphane şu an rahat."}}]}`))
	}))
	defer srv.Close()

	client := NewOpenRouterApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	reply, err := client.CreateChatCompletion("system prompt", "En boş yer neresi?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if reply != "Kütüphane şu an rahat." {
		t.Errorf("unexpected reply: %q", reply)
	}

	// request body must carry both messages in order
	messages, ok := received["messages"].([]interface{})
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages in request, got %v", received["messages"])
	}
	first := messages[0].(map[string]interface{})
	if first["role"] != "system" || first["content"] != "system prompt" {
		t.Errorf("unexpected system message: %v", first)
	}
	second := messages[1].(map[string]interface{})
	if second["role"] != "user" {
		t.Errorf("unexpected user message: %v", second)
	}
}

func TestCreateChatCompletion_MissingKey(t *testing.T) {
	client := NewOpenRouterApiClient(api.NewHTTPClient("http://localhost:0"))

	if _, err := client.CreateChatCompletion("sys", "hi"); err == nil {
		t.Fatalf("expected an error when no key is set, got nil")
	}
}

func TestCreateChatCompletion_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenRouterApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	if _, err := client.CreateChatCompletion("sys", "hi"); err == nil {
		t.Fatalf("expected an error for empty choices, got nil")
	}
}
