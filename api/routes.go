package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/mailcanvas/mailcanvas/api/handlers"
	"github.com/mailcanvas/mailcanvas/api/middleware"
	"github.com/mailcanvas/mailcanvas/internal/repository"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
	"github.com/mailcanvas/mailcanvas/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, repos *repository.Repositories, apikey string) {
	if s == nil {
		panic("Services cannot be nil")
	}
	if repos == nil {
		panic("Repositories cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())                                         // Gin's built-in recovery
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer())) // Our custom Jaeger recovery

	// setup handlers
	apiHandlers := handlers.InitHandlers(s)

	// Health check and status endpoints (no auth needed)
	r.GET("/health", handlers.HealthCheck)
	r.GET("/status", handlers.Status(s.Registry))

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-MAILCANVAS-API-KEY",
		ValidAPIKey: apikey,
	})

	// API group with version
	api := r.Group("/v1")
	api.Use(apiKeyMiddleware)
	api.Use(middleware.TracingMiddleware()) // Add tracing for all /v1/* endpoints
	{
		// Component catalog for the editor palette
		api.GET("/components", apiHandlers.Templates.ListComponents())

		// Template endpoints
		templates := api.Group("/templates")
		{
			templates.GET("", apiHandlers.Templates.List())
			templates.POST("", apiHandlers.Templates.Save())
			templates.POST("/preview", apiHandlers.Templates.PreviewDocument())
			templates.GET("/:id", apiHandlers.Templates.Get())
			templates.PUT("/:id", apiHandlers.Templates.Save())
			templates.DELETE("/:id", apiHandlers.Templates.Delete())
			templates.GET("/:id/preview", apiHandlers.Templates.Preview())
			templates.POST("/:id/render", apiHandlers.Templates.Render())
		}

		// Media endpoints
		media := api.Group("/media")
		{
			media.POST("", apiHandlers.Media.Upload())
			media.GET("/:id", apiHandlers.Media.Get())
			media.GET("/:id/content", apiHandlers.Media.Content())
			media.DELETE("/:id", apiHandlers.Media.Delete())
		}
	}
}
