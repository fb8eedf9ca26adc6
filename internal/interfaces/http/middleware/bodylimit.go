package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volhub/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects request bodies larger than maxBytes with 413. Declared
// lengths are checked up front; chunked bodies are capped while reading.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse("REQUEST_TOO_LARGE", "Request body exceeds maximum allowed size"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
