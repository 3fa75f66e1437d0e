// Package main implements the dashboard server for digital transformation
// management. It serves the REST API backing the dashboard frontend and an
// OpenAI-backed assistant for summaries, reports and chat.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app"
	"github.com/transformhub/dashboard/internal/app/httpapi"
	"github.com/transformhub/dashboard/internal/config"
	"github.com/transformhub/dashboard/internal/middleware"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	var generator ai.Generator = ai.Disabled{}
	if cfg.AI.APIKey != "" {
		generator = ai.NewClient(ai.ClientConfig{
			BaseURL: cfg.AI.BaseURL,
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			Timeout: cfg.AI.Timeout,
		})
		log.WithField("model", cfg.AI.Model).Info("content generation enabled")
	} else {
		log.Warn("OPENAI_API_KEY not set, content generation disabled")
	}

	application, err := app.New(app.Stores{}, generator, app.Options{SeedData: cfg.SeedData}, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize application")
	}

	handler := httpapi.NewHandler(application,
		middleware.MetricsMiddleware(),
		middleware.LoggingMiddleware(log),
	)

	cors := middleware.NewCORSMiddleware(cfg.CORSAllowedOrigins)
	chain := cors.Handler(handler)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      chain,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr).Info("dashboard API listening")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown error")
	}

	log.Info("dashboard stopped")
}
