package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artsync/internal/api"
	"artsync/internal/config"
	"artsync/internal/logger"
	"artsync/internal/services/sam"
	"artsync/internal/services/webflow"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize logger
	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	samClient := sam.NewClient(cfg.SAMBaseURL, cfg.SAMAPIKey, cfg.SAMUsername, cfg.SAMPassword, zlog)
	webflowClient := webflow.NewClient(cfg, zlog)

	// Subscribe this server's public URL to new-order events.
	if cfg.WebhookPublicURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := webflowClient.RegisterWebhook(ctx, webflow.TriggerNewOrder, cfg.WebhookPublicURL); err != nil {
			zlog.Fatal("failed to register webhook", zap.Error(err))
		}
		cancel()
	} else {
		zlog.Warn("WEBHOOK_PUBLIC_URL not set, skipping webhook registration")
	}

	server := api.New(cfg, zlog, samClient)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		zlog.Error("shutdown failed", zap.Error(err))
	}
}
