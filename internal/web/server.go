// Package web exposes a small HTTP status surface for uptime monitors.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Status supplies the live bot state reported by the endpoints.
type Status interface {
	Tag() string
	Connected() bool
	Uptime() time.Duration
}

// Server serves the status endpoints.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New creates the status server on the given port.
func New(port int, status Status, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "online",
			"bot":    status.Tag(),
			"uptime": status.Uptime().Round(time.Second).String(),
		})
	})

	router.GET("/health", func(c *gin.Context) {
		code := http.StatusOK
		if !status.Connected() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  "ok",
			"discord": status.Connected(),
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the HTTP handler serving the status routes.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start() {
	s.logger.Info("Status server started", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Status server stopped", zap.Error(err))
	}
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("Status server shutdown failed", zap.Error(err))
	}
}
