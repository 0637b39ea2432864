package config

import (
	"time"

	"github.com/gin-gonic/gin"
)

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		latency := time.Since(start)

		Logger.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency)

		// Alert for slow requests
		if latency > 200*time.Millisecond {
			Logger.Warnw("slow request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"latency", latency)
		}
	}
}
