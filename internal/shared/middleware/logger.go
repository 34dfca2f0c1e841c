package middleware

import (
	"log/slog"
	"time"

	sharedContext "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware binds a request scoped slog logger into the request context
// and writes one access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))

		// handlers/services/repositories use logger.FromContext
		ctx := logger.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}

		// search filters are sent as query parameters
		if raw != "" {
			fields = append(fields, "query", raw)
		}

		if subject, ok := sharedContext.GetSubject(c); ok {
			fields = append(fields, "subject", logger.MaskUsername(subject))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		msg := "Request processed"

		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}
