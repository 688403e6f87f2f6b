package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/lvyanru/soda-apiserver/internal/handler"
	"github.com/lvyanru/soda-apiserver/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	validationHandler *handler.ValidationHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Swagger API documentation
	// Access at: http://localhost:8000/swagger/index.html
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes
	apiV1 := h.Group("/api/v1")
	{
		apiV1.POST("/validate", validationHandler.Validate)
		apiV1.GET("/validation-rules-examples", validationHandler.RuleExamples)
	}
}
