// Package handler provides transport-level endpoints that belong to no feature.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers liveness probes. Responses are marked no-store so
// intermediaries never cache them.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
