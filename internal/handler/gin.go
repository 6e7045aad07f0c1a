package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps the request body read into an Event
const MaxBodyBytes = 1 << 20

// Gin adapts an EventHandler to a gin route
func Gin(h EventHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}

		params := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		resp := h.Handle(c.Request.Context(), Event{
			Method:      c.Request.Method,
			QueryParams: params,
			Body:        string(body),
		})

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Status(resp.StatusCode)
		if resp.Body != "" {
			_, _ = c.Writer.WriteString(resp.Body)
		}
	}
}

// register mounts h on every verb of path; the handler itself answers 405
func register(rg *gin.RouterGroup, path string, h EventHandler) {
	rg.Any(path, Gin(h))
}
