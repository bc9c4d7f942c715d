package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"miswa/internal/domain/auth"
	"miswa/internal/pkg/response"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request. 5xx responses are logged at error level.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("size", c.Writer.Size()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(ctxRequestIDKey)),
		}
		if admin := c.GetString(auth.CtxUsernameKey); admin != "" {
			fields = append(fields, zap.String("admin_username", admin))
		}
		for _, e := range c.Errors {
			fields = append(fields, zap.NamedError("gin_error", e.Err))
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("http request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 with the standard error body and logs the stack.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					zap.Error(fmt.Errorf("%v", recovered)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(ctxRequestIDKey)),
					zap.Stack("stack"),
				)
				response.AbortError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
			}
		}()
		c.Next()
	}
}
