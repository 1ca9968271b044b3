package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Success writes a 200 OK `{success:true, ...}` envelope with the given
// extra fields merged next to the flag.
func Success(c *gin.Context, fields gin.H) {
	payload := gin.H{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	JSON(c, http.StatusOK, payload)
}
