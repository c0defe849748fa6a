package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/amanmaurya001/backend-test/internal/sanitize"
	"github.com/gin-gonic/gin"
)

// SanitizeBody neutralizes HTML/script content in every string leaf of a JSON
// request body before any handler binds it. The sanitized payload replaces
// the original body, so downstream code only ever sees clean values.
func SanitizeBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil {
			c.Next()
			return
		}

		rawBody, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}
		_ = c.Request.Body.Close()

		if len(bytes.TrimSpace(rawBody)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(rawBody))
			c.Next()
			return
		}

		var payload any
		if err := json.Unmarshal(rawBody, &payload); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		clean, err := json.Marshal(sanitize.Value(payload))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(clean))
		c.Request.ContentLength = int64(len(clean))
		c.Request.Header.Set("Content-Type", "application/json")

		c.Next()
	}
}
