package respond

import (
	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/telemetry"
)

// Fail sends a plain `{error}` envelope.
func Fail(c *gin.Context, status int, message string) {
	fail(c, status, gin.H{"error": message})
}

// FailDetail sends an `{error, detail}` envelope for wrapped internal errors.
func FailDetail(c *gin.Context, status int, message, detail string) {
	fail(c, status, gin.H{"error": message, "detail": detail})
}

// FailRaw sends an `{error, raw}` envelope carrying the sanitized oracle
// text for operator diagnosis. The raw text is diagnostic only; callers must
// never treat it as authoritative data.
func FailRaw(c *gin.Context, status int, message, raw string) {
	fail(c, status, gin.H{"error": message, "raw": raw})
}

// FailEnvelope sends a `{success:false, error}` envelope.
func FailEnvelope(c *gin.Context, status int, message string) {
	fail(c, status, gin.H{"success": false, "error": message})
}

func fail(c *gin.Context, status int, payload gin.H) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"error":      payload["error"],
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
	c.AbortWithStatusJSON(status, payload)
}
