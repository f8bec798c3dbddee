package middleware

import (
	"github.com/gin-gonic/gin"
	"log/slog"
	"time"
)

// RequestLogger logs every request once it has been served.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("request completed", attrs...)
		case c.Writer.Status() >= 400:
			log.Warn("request completed", attrs...)
		default:
			log.Info("request completed", attrs...)
		}
	}
}
