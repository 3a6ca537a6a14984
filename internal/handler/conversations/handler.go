package conversations

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clancybot/clancy/backend/internal/store"
	"github.com/clancybot/clancy/backend/pkg/utils"
)

// Handler exposes read and delete access to the interaction log.
type Handler struct {
	interactionLog store.InteractionLog
}

// New creates the conversations handler.
func New(interactionLog store.InteractionLog) *Handler {
	return &Handler{interactionLog: interactionLog}
}

// RegisterRoutes mounts the log admin routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/conversations", h.handleList)
	r.Get("/conversations/{sessionID}", h.handleGet)
	r.Delete("/conversations/{sessionID}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.interactionLog.All(r.Context())
	if err != nil {
		log.Printf("[conversations] listing interactions failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to retrieve conversations")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	records, err := h.interactionLog.AllFor(r.Context(), sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		log.Printf("[conversations] reading session=%s failed: %v", sessionID, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to retrieve conversation")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	removed, err := h.interactionLog.DeleteSession(r.Context(), sessionID)
	if err != nil {
		log.Printf("[conversations] deleting session=%s failed: %v", sessionID, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete conversation")
		return
	}
	if !removed {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "conversation deleted successfully"})
}
