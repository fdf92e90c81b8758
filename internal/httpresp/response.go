package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a success envelope merged with the route's payload keys.
func OK(c *gin.Context, payload gin.H) {
	write(c, http.StatusOK, payload)
}

func Created(c *gin.Context, payload gin.H) {
	write(c, http.StatusCreated, payload)
}

func write(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}
