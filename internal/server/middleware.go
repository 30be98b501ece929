package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"krishimitra/internal/logging"
	"krishimitra/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an id and logs it on completion.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set("request_id", id)

		start := time.Now()
		c.Next()

		logging.WithRequestID(logging.CategoryServer, id).Debug("%s %s -> %d in %v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// metricsMiddleware records request counts and latency by route template.
func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// jsonMiddleware rejects request bodies that are not JSON.
func jsonMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost && c.Request.ContentLength > 0 {
			ct := c.GetHeader("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, errorResponse{
					Error: "Content-Type must be application/json",
				})
				return
			}
		}
		c.Next()
	}
}
