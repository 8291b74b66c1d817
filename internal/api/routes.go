// Package api wires the demo HTTP/websocket surface around the search
// core: authentication and rate limiting (unchanged, domain-neutral
// middleware), a status endpoint, a recent-hits endpoint, and the
// websocket upgrade route. None of this is part of the search core
// itself (spec.md §6 keeps the core free of I/O); it exists only so the
// engine can be driven and observed over HTTP for the demo in
// cmd/searchd.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/store"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/telemetry"
)

// Server holds the dependencies the demo HTTP handlers need.
type Server struct {
	Hub   *telemetry.Hub
	Store *store.HitStore // optional: nil disables persistence-backed routes

	StartedAt time.Time
}

// Routes registers the demo API on engine, applying rate limiting and
// bearer-token auth to every route except the websocket stream.
func (s *Server) Routes(engine *gin.Engine, limiter *RateLimiter) {
	engine.GET("/ws", s.Hub.Subscribe)

	protected := engine.Group("/")
	protected.Use(limiter.Middleware(), AuthMiddleware())
	{
		protected.GET("/status", s.handleStatus)
		protected.GET("/hits/recent", s.handleRecentHits)
	}
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uptime":       time.Since(s.StartedAt).String(),
		"storeEnabled": s.Store != nil,
	})
}

func (s *Server) handleRecentHits(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "hit persistence is not configured"})
		return
	}

	limit := 50
	if q := c.Query("limit"); q != "" {
		var n int
		if _, err := fmt.Sscanf(q, "%d", &n); err == nil && n > 0 {
			limit = n
		}
	}

	hits, err := s.Store.RecentHits(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hits": hits})
}
