package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clancybot/clancy/backend/internal/sanitize"
	conversationService "github.com/clancybot/clancy/backend/internal/service/conversation"
	"github.com/clancybot/clancy/backend/pkg/utils"
)

// Handler serves the single conversational endpoint.
type Handler struct {
	conversationSvc *conversationService.Service
}

// New creates the chat handler.
func New(conversationSvc *conversationService.Service) *Handler {
	return &Handler{conversationSvc: conversationSvc}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := sanitize.Clean(payload.Message)
	sessionID := strings.TrimSpace(payload.SessionID)

	// A turn must never surface an internal fault unformatted: anything the
	// state machine could not absorb is converted into the generic apology,
	// anchored at the main menu, with the session id when known.
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[chat] recovered from panic: %v", rec)
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
				"session_id": sessionID,
				"response":   conversationService.FallbackResponse,
			})
		}
	}()

	result := h.conversationSvc.HandleMessage(r.Context(), sessionID, message)

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"session_id": result.SessionID,
		"response":   result.Response,
	})
}
