package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Booking platform API is up",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Index is the API landing page, mostly useful when poking the server by
// hand.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the booking platform API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":   "/api/health",
			"auth":     "/api/auth/*",
			"services": "/api/services",
			"bookings": "/api/bookings",
		},
	})
}
