package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mailcanvas/mailcanvas/internal/canvas"
)

// HealthCheck provides a simple health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Status reports the component catalog size so deployments can verify the
// editor is fully provisioned.
func Status(registry *canvas.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"components": registry.Size(),
		})
	}
}
