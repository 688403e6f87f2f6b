package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"github.com/lvyanru/soda-apiserver/internal/domain"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	engine  domain.ScanEngine
	version string
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(engine domain.ScanEngine, version string) *HealthHandler {
	return &HealthHandler{
		engine:  engine,
		version: version,
	}
}

// Ping reports service identity
//
//	@Summary		Ping health check
//	@Description	Reports that the service is up
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ping [get]
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "healthy",
		"service": "SODA Core Snowflake Validator",
		"version": h.version,
	})
}

// Readiness checks the service and its scan runner dependency
//
//	@Summary		Readiness check
//	@Description	Checks whether the service and the scan runner are ready
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		503	{object}	map[string]interface{}
//	@Router			/health/ready [get]
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if err := h.engine.HealthCheck(ctx); err != nil {
		c.JSON(503, utils.H{
			"status":      "not_ready",
			"scan_runner": "unhealthy",
			"error":       err.Error(),
		})
		return
	}

	c.JSON(200, utils.H{
		"status":      "ready",
		"scan_runner": "healthy",
	})
}

// Liveness reports process liveness
//
//	@Summary		Liveness check
//	@Description	Checks whether the service is alive
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health/live [get]
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
