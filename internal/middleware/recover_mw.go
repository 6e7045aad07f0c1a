package middleware

import (
	"net/http"

	"school_portal/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoverMiddleware turns a panic into a JSON 500
func RecoverMiddleware(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(c.Request.Context(), l).Error("panic",
					zap.Any("err", rec),
					zap.String("path", c.Request.URL.Path),
				)
				c.Header("Access-Control-Allow-Origin", "*")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
