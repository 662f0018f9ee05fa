// Package web is the keep-alive HTTP surface: a liveness line for uptime
// pingers, a health check that exercises Redis, and a small status page.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/playroom-bot/playroom/internal/common/clock"
	"github.com/playroom-bot/playroom/internal/services/arcade"
)

// Config holds configuration for the web server
type Config struct {
	// Addr to listen on, e.g. ":8080"
	Addr string

	// Redis client checked by /healthz
	RedisClient *redis.Client

	// Arcade service for the active session count
	Arcade arcade.Service

	// Clock for uptime reporting
	Clock clock.Clock
}

// Server is the keep-alive HTTP server
type Server struct {
	engine    *gin.Engine
	server    *http.Server
	redis     *redis.Client
	arcade    arcade.Service
	clock     clock.Clock
	startedAt time.Time
}

// New creates a new web server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Arcade == nil {
		return nil, errors.New("arcade service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:    engine,
		redis:     cfg.RedisClient,
		arcade:    cfg.Arcade,
		clock:     cfg.Clock,
		startedAt: cfg.Clock.Now(),
	}

	engine.GET("/", s.handleRoot)
	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/status", s.handleStatus)

	s.server = &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	return s, nil
}

// Start serves until the listener fails or Shutdown is called
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("keep-alive server listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "Bot is alive")
}

func (s *Server) handleHealthz(c *gin.Context) {
	if err := s.redis.Ping(c.Request.Context()).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"redis":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uptime":          s.clock.Now().Sub(s.startedAt).Round(time.Second).String(),
		"active_sessions": s.arcade.ActiveSessions(),
	})
}
