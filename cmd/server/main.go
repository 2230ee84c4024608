package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"insider/internal/app"
	"insider/internal/config"
	httpTransport "insider/internal/transport/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithEnvFiles()
	if err != nil {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}

	// Set up logger
	var logger *slog.Logger
	logOpts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}

	if cfg.Logging.Format == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, logOpts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	}

	slog.SetDefault(logger)

	logger.Info("starting insider game server",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	if cfg.IsProduction() && slices.Contains(cfg.Server.AllowedOrigins, "*") {
		logger.Warn("any origin may open websockets; set ALLOWED_ORIGINS")
	}

	topics, err := config.LoadTopics(cfg.Game.TopicsFile)
	if err != nil {
		logger.Error("failed to load topics", "file", cfg.Game.TopicsFile, "error", err)
		os.Exit(1)
	}
	logger.Info("topic pool loaded", "topics", len(topics), "file", cfg.Game.TopicsFile)

	// Create game hub
	hub := app.NewGameHub(app.HubOptions{
		Clock:          clockwork.NewRealClock(),
		RoomCodeLength: cfg.Game.RoomCodeLength,
		StaleTimeout:   cfg.Game.StaleRoomTimeout,
		Seed:           cfg.Game.RandomSeed,
		TickInterval:   cfg.Game.TickInterval,
		MinPlayers:     cfg.Game.MinPlayers,
		Topics:         topics,
	}, logger)
	defer hub.Close()

	// Create HTTP server
	server := httpTransport.NewServer(cfg, hub, logger)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
