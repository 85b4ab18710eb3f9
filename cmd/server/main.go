// Package main provides the Messenger shopbot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/achabot/messenger-shopbot-go/internal/bot"
	"github.com/achabot/messenger-shopbot-go/internal/buildinfo"
	"github.com/achabot/messenger-shopbot-go/internal/config"
	"github.com/achabot/messenger-shopbot-go/internal/logger"
	"github.com/achabot/messenger-shopbot-go/internal/messenger"
	"github.com/achabot/messenger-shopbot-go/internal/metrics"
	"github.com/achabot/messenger-shopbot-go/internal/sentry"
	"github.com/achabot/messenger-shopbot-go/internal/webhook"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	if buildinfo.Version != "" {
		log = log.WithField("version", buildinfo.Version)
	}
	log.Info("Starting Messenger shopbot server")

	// Initialize Sentry error tracking (no-op without a DSN)
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Release(),
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error tracking disabled")
	} else if sentry.IsEnabled() {
		log.WithField("environment", cfg.SentryEnvironment).Info("Sentry initialized")
	}

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Create Send API client
	gateway := messenger.NewClient(cfg.GraphAPIBaseURL, cfg.PageAccessToken, config.SendRequest)
	log.WithField("base_url", cfg.GraphAPIBaseURL).Info("Send API client created")

	// Create the conversation pipeline
	composer := bot.NewComposer(bot.DefaultContent(), cfg.Bot.ProductCardCount)
	dispatcher := bot.NewDispatcher(gateway, composer, log, m, cfg.Bot.SendTimeout)

	// Create webhook handler
	webhookHandler := webhook.NewHandler(webhook.HandlerConfig{
		AppSecret:   cfg.AppSecret,
		VerifyToken: cfg.VerifyToken,
		BotConfig:   &cfg.Bot,
		Metrics:     m,
		Logger:      log,
		Dispatcher:  dispatcher,
	})
	log.Info("Webhook handler created")

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))

	// Setup routes
	setupRoutes(router, webhookHandler, registry, cfg.GraphAPIBaseURL)

	// Create HTTP server with timeouts sized for webhook handling
	// See internal/config/timeouts.go for detailed explanations
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.WebhookHTTPRead,
		WriteTimeout: config.WebhookHTTPWrite,
		IdleTimeout:  config.WebhookHTTPIdle,
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Stop accepting new callbacks
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Drain in-flight async event processing
	if err := webhookHandler.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Timeout waiting for event processing to finish")
	}

	// Flush buffered Sentry events
	if sentry.IsEnabled() && !sentry.Flush(2*time.Second) {
		log.Warn("Timeout flushing Sentry events")
	}

	log.Info("Server stopped")
}
