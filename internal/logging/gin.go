package logging

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Requests logs one line per request. Handler errors attached with c.Error
// are logged at error level.
func Requests(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if c.FullPath() == "" {
			attrs[3] = c.Request.URL.Path
		}
		switch {
		case len(c.Errors) > 0:
			log.Error("request", append(attrs, "error", c.Errors.String())...)
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}
