package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	model "github.com/clancybot/clancy/backend/internal/model/conversation"
	conversationService "github.com/clancybot/clancy/backend/internal/service/conversation"
	"github.com/clancybot/clancy/backend/internal/store"
)

// panicLog blows up on reads to exercise the handler's recovery path.
type panicLog struct{}

func (panicLog) Append(context.Context, model.InteractionRecord) error { return nil }
func (panicLog) LastFor(context.Context, string) (model.InteractionRecord, error) {
	panic("log backend gone")
}
func (panicLog) AllFor(context.Context, string) ([]model.InteractionRecord, error) {
	return nil, store.ErrSessionNotFound
}
func (panicLog) MajorsFor(context.Context, string) ([]string, error) { return nil, nil }
func (panicLog) All(context.Context) ([]model.InteractionRecord, error) { return nil, nil }
func (panicLog) DeleteSession(context.Context, string) (bool, error) { return false, nil }

func setupRouter() (*chi.Mux, *store.Memory) {
	memory := store.NewMemory()
	svc := conversationService.NewService(memory, nil, "Clancy")
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, memory
}

func postChat(t *testing.T, r *chi.Mux, body map[string]string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	var decoded map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, decoded
}

func TestChatInitOpensSession(t *testing.T) {
	r, _ := setupRouter()

	resp, decoded := postChat(t, r, map[string]string{"message": "INIT"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if decoded["session_id"] == "" {
		t.Fatal("expected a session_id in the response")
	}
	if !strings.Contains(decoded["response"], "[ASK_NAME]") {
		t.Fatalf("expected ASK_NAME tag, got %q", decoded["response"])
	}
}

func TestChatFullNameTurn(t *testing.T) {
	r, _ := setupRouter()

	_, initResp := postChat(t, r, map[string]string{"message": "INIT"})
	_, nameResp := postChat(t, r, map[string]string{
		"message":    "Jordan",
		"session_id": initResp["session_id"],
	})

	if nameResp["session_id"] != initResp["session_id"] {
		t.Fatalf("expected stable session id, got %q then %q", initResp["session_id"], nameResp["session_id"])
	}
	if !strings.Contains(nameResp["response"], "Nice to meet you, Jordan!") {
		t.Fatalf("expected greeting by name, got %q", nameResp["response"])
	}
}

func TestChatSanitizesInboundMarkup(t *testing.T) {
	r, memory := setupRouter()

	_, initResp := postChat(t, r, map[string]string{"message": "INIT"})
	postChat(t, r, map[string]string{
		"message":    "<script>alert(1)</script>Jordan",
		"session_id": initResp["session_id"],
	})

	last, err := memory.LastFor(context.Background(), initResp["session_id"])
	if err != nil {
		t.Fatalf("LastFor err: %v", err)
	}
	if last.Name != "Jordan" {
		t.Fatalf("expected sanitized name, got %q", last.Name)
	}
}

func TestChatPanicAnswersWithFallback(t *testing.T) {
	svc := conversationService.NewService(panicLog{}, nil, "Clancy")
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	resp, decoded := postChat(t, r, map[string]string{
		"message":    "hello",
		"session_id": "s1",
	})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if decoded["session_id"] != "s1" {
		t.Fatalf("expected known session id to be preserved, got %q", decoded["session_id"])
	}
	if decoded["response"] != conversationService.FallbackResponse {
		t.Fatalf("expected the generic apology, got %q", decoded["response"])
	}
	if !strings.Contains(decoded["response"], "[MAIN_MENU]") {
		t.Fatalf("expected fallback anchored at MAIN_MENU, got %q", decoded["response"])
	}
	if strings.Contains(decoded["response"], "log backend gone") {
		t.Fatalf("internal detail leaked into the response: %q", decoded["response"])
	}
}

func TestChatInvalidBody(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
