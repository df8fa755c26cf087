package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware registra cada requisição HTTP no logger
func GinMiddleware(log Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("requisição HTTP", fields...)
		case status >= 400:
			log.Warn("requisição HTTP", fields...)
		default:
			log.Info("requisição HTTP", fields...)
		}
	}
}
