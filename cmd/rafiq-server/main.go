package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/api"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/config"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/db"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/logging"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/mood"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/responder"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/scheduler"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Init("info", "json")
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().Msg("starting rafiq-server")

	// Sanity-check the static keyword and scoring tables before serving.
	if err := emotion.ValidateTables(); err != nil {
		log.Fatal().Err(err).Msg("emotion tables are inconsistent")
	}
	if err := mood.ValidateScoreTable(); err != nil {
		log.Fatal().Err(err).Msg("mood score table is inconsistent")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to create data dir")
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	// Open mood history
	store := mood.OpenStore(cfg.MoodHistoryPath())
	log.Info().Int("entries", store.Len()).Str("path", cfg.MoodHistoryPath()).Msg("mood history loaded")

	// Create responder
	resp, err := responder.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create responder")
	}

	// Validate the Gemini connection at startup
	if !resp.FallbackOnly() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := resp.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Msg("responder health check failed, replies may fall back")
		} else {
			log.Info().Str("model", cfg.GeminiModel).Msg("responder connected")
		}
		cancel()
	}

	manager := session.NewManager(store, emotion.NewKeywordClassifier(), resp, database, cfg.MemoryCap)

	// Create router
	router := api.NewRouter(cfg, database, manager, resp)

	// Create and start scheduler
	sched, err := scheduler.New(database, store, resp, scheduler.Config{
		Timezone:      cfg.Timezone,
		RetentionDays: cfg.RetentionDays,
		BackupDir:     cfg.BackupDir(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scheduler")
	}
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	// Start server
	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-done
	log.Info().Msg("shutting down gracefully")

	// Give ongoing requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	if err := sched.Stop(); err != nil {
		log.Error().Err(err).Msg("scheduler shutdown error")
	}

	if err := resp.Close(); err != nil {
		log.Error().Err(err).Msg("responder close error")
	}

	if err := database.Close(); err != nil {
		log.Error().Err(err).Msg("database close error")
	}

	log.Info().Msg("shutdown complete")
}
