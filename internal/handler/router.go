package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clancybot/clancy/backend/internal/handler/chat"
	"github.com/clancybot/clancy/backend/internal/handler/conversations"
	middlewarePkg "github.com/clancybot/clancy/backend/internal/middleware"
	conversationService "github.com/clancybot/clancy/backend/internal/service/conversation"
	"github.com/clancybot/clancy/backend/internal/store"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(conversationSvc *conversationService.Service, interactionLog store.InteractionLog) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(conversationSvc)
	conversationsHandler := conversations.New(interactionLog)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		conversationsHandler.RegisterRoutes(api)
	})

	return r
}
