package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness
func Health(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": version,
		})
	}
}

// Version reports the build version
func Version(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version": version,
			"service": "cafe-fausse",
		})
	}
}
