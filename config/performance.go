package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.NewString()
		c.Set("requestId", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(start)

		// Log all requests with timing
		log.Printf("[PERF] %s | %s %s | Status: %d | Time: %v",
			requestID[:8],
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		// Alert for slow requests
		if latency > 200*time.Millisecond {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
