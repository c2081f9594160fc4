package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"artsync/internal/api/handlers"
	"artsync/internal/api/middleware"
	"artsync/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *zap.Logger, samService handlers.CustomerOrderService) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))

	orderHandler := handlers.NewOrderHandler(samService, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/webhooks/orders", orderHandler.HandleNewOrder)

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting webhook server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down webhook server")
	return s.server.Shutdown(ctx)
}

// Router exposes the Gin router, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
