package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agridash/internal/config"
	"agridash/internal/logger"
	"agridash/internal/server"
	"agridash/internal/storage"
)

func main() {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	configureLogger(cfg)

	logger.Info("Starting farm dashboard service", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"version":     config.GetVersion(),
	})

	store, err := storage.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}

	srv := server.NewServer(cfg, store)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}

	logger.Info("Server stopped")
}

// configureLogger applies the configured log level and format to the global
// logger, keeping the defaults for unrecognized values.
func configureLogger(cfg *config.Config) {
	log := logger.GetGlobalLogger()
	if level := logger.ParseLevel(cfg.LogLevel); level >= 0 {
		log.SetLevel(level)
	}
	if format := logger.ParseFormat(cfg.LogFormat); format >= 0 {
		log.SetFormat(format)
	}
}
