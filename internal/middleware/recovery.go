package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ttsbooking/consult-platform/internal/config"
)

// Recovery converts panics into the JSON error envelope. Stack traces are
// exposed only in development.
func Recovery(cfg *config.Config) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		body := gin.H{
			"success": false,
			"message": "Internal server error.",
		}

		if cfg.IsDevelopment() {
			body["error"] = fmt.Sprint(recovered)
			body["stack"] = string(debug.Stack())
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
