package auth

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// SharerHeader identifies the acting user on every sharing endpoint.
	SharerHeader = "X-Sharer-User-Id"

	sharerIDKey    = "sharerID"
	requestIDKey   = "requestID"
	requestIDField = "X-Request-Id"
)

// SharerRequired extracts the acting user's id from the X-Sharer-User-Id
// header. The value is only parsed here; whether the user exists is checked
// by the services.
func SharerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(SharerHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + SharerHeader + " header",
			})
			return
		}

		id, err := strconv.ParseInt(header, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + SharerHeader + " header",
			})
			return
		}

		c.Set(sharerIDKey, id)
		c.Next()
	}
}

// GetSharerID returns the acting user's id set by SharerRequired, or 0.
func GetSharerID(c *gin.Context) int64 {
	if v, ok := c.Get(sharerIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RequestLogger logs every request with a generated request id, method,
// path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDField)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set(requestIDField, reqID)

		c.Next()

		log.WithFields(log.Fields{
			"request_id": reqID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("request completed")
	}
}
