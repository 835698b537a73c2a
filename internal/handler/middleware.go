package handler

import (
	"log/slog"
	"malaynews/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags the request context with a request id and logs each
// completed request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := logger.Ctx(c.Request.Context(), slog.String("request_id", uuid.NewString()))
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		slog.InfoContext(ctx, "request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
