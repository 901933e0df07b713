package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/database"
	"github.com/cobbleworks/foundry/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only the platform's own components (database, worker pool) are checked.
// External dependencies (substrate, LLM provider) are excluded so an
// orchestrator never restarts this service over somebody else's outage.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	resp := &HealthResponse{
		Status:  status,
		Version: version.Full(),
		Checks:  checks,
	}
	if s.warnings != nil {
		resp.Warnings = s.warnings.GetWarnings()
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}

// healthDBHandler handles GET /health/db: a DB ping with pool statistics.
func (s *Server) healthDBHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, &DBHealthResponse{
			Status:   healthStatusUnhealthy,
			Database: dbHealth,
		})
		return
	}

	c.JSON(http.StatusOK, &DBHealthResponse{
		Status:   healthStatusHealthy,
		Database: dbHealth,
	})
}

// healthQueueHandler handles GET /health/queue. Replicas that run no
// worker pool report disabled rather than unhealthy.
func (s *Server) healthQueueHandler(c *gin.Context) {
	if s.pool == nil {
		c.JSON(http.StatusOK, &QueueHealthResponse{Status: "disabled"})
		return
	}

	poolHealth := s.pool.Health()
	status := healthStatusHealthy
	httpStatus := http.StatusOK
	if poolHealth == nil || !poolHealth.IsHealthy {
		status = healthStatusUnhealthy
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &QueueHealthResponse{Status: status, Pool: poolHealth})
}
