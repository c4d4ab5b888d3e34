package main

import (
	"context"
	"fmt"
	"log"

	_ "recapd/docs"
	"recapd/internal/config"
	"recapd/internal/export"
	"recapd/internal/handler"
	"recapd/internal/reader"
	"recapd/internal/router"
	"recapd/internal/service"
	"recapd/internal/store/memory"
	"recapd/internal/summarizer/gemini"
)

// @title recapd API
// @version 1.0
// @description Meeting transcript summarization service backed by the Gemini API.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Wire components
	store := memory.NewSessionStore()
	docReader := reader.New()
	generator := gemini.NewSummarizer(&cfg.Gemini)
	exporter := export.NewDocxExporter()

	sessionSvc := service.NewSessionService(store, docReader, generator, exporter, &cfg.Upload)

	cleanCtx, cleanCancel := context.WithCancel(context.Background())
	defer cleanCancel()
	sessionSvc.StartSessionCleaner(cleanCtx, cfg.Session.CleanupInterval(), cfg.Session.TTL())

	sessionH := handler.NewSessionHandler(sessionSvc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, sessionH, healthH)

	log.Printf("Server starting on %s (model %s)", cfg.Server.Port, cfg.Gemini.Model)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
