package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"artsync/internal/config"
	"artsync/internal/logger"
	"artsync/internal/services/sam"
	"artsync/internal/services/webflow"
	"artsync/internal/sync"

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	samClient := sam.NewClient(cfg.SAMBaseURL, cfg.SAMAPIKey, cfg.SAMUsername, cfg.SAMPassword, zlog)
	source := sam.NewAdapter(cfg.SAMSchema, samClient, zlog)
	dest := webflow.NewClient(cfg, zlog)

	pipeline := sync.New(source, dest, zlog)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		zlog.Error("sync run failed", zap.Error(err))
		os.Exit(1)
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
