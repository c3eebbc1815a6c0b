// Package handlers implements the HTTP ingest surface: health probes,
// the thumbnail pipeline webhook, tokenized guest RSVP, email
// validation and password reset. There is no authenticated product API
// here; full-account traffic terminates elsewhere.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"planora.io/planora/internal/account"
	"planora.io/planora/internal/jobs"
	"planora.io/planora/internal/passwordreset"
	"planora.io/planora/internal/service"
)

// Server bundles handler dependencies.
type Server struct {
	pool     *pgxpool.Pool
	enqueuer *jobs.RiverEnqueuer
	events   *service.EventService
	accounts *account.Service
	resets   *passwordreset.Service

	// processSecret authenticates machine callers (the thumbnail
	// pipeline webhook).
	processSecret string
}

// NewServer creates the handler set.
func NewServer(pool *pgxpool.Pool, enqueuer *jobs.RiverEnqueuer, events *service.EventService, accounts *account.Service, resets *passwordreset.Service, processSecret string) *Server {
	return &Server{
		pool:          pool,
		enqueuer:      enqueuer,
		events:        events,
		accounts:      accounts,
		resets:        resets,
		processSecret: processSecret,
	}
}

// GetLiveness handles GET /health/live.
func (s *Server) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadiness handles GET /health/ready.
func (s *Server) GetReadiness(c *gin.Context) {
	checks := make(map[string]string)
	allHealthy := true

	if err := s.pool.Ping(c.Request.Context()); err != nil {
		checks["database"] = "error"
		allHealthy = false
	} else {
		checks["database"] = "ok"
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{"status": status, "checks": checks})
}
