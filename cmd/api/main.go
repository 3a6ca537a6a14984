package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clancybot/clancy/backend/internal/config"
	"github.com/clancybot/clancy/backend/internal/handler"
	"github.com/clancybot/clancy/backend/internal/service/ai"
	conversationService "github.com/clancybot/clancy/backend/internal/service/conversation"
	"github.com/clancybot/clancy/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	interactionLog, err := newInteractionLog(cfg.Store)
	if err != nil {
		log.Fatalf("failed to initialize interaction log: %v", err)
	}

	var generator conversationService.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality - check the provider environment variables")
		} else {
			generator = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("generation credentials not configured, skipping AI initialization")
	}

	conversationSvc := conversationService.NewService(interactionLog, generator, cfg.AI.AssistantName)
	router := handler.NewRouter(conversationSvc, interactionLog)

	startServer(ctx, cfg.Server, router)
}

func newInteractionLog(cfg config.StoreConfig) (store.InteractionLog, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		log.Printf("using sqlite interaction log at %s", cfg.SQLitePath)
		return store.NewSQLite(cfg.SQLitePath)
	default:
		log.Println("using in-memory interaction log")
		return store.NewMemory(), nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Clancy backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
