package middlewares

import (
	"log/slog"
	"time"

	"pos-backend/pkg/logger"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id and logs it once it completes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(utils.CtxRequestID, rid)
		c.Header(RequestIDHeader, rid)

		start := time.Now()
		c.Next()

		log.Info("http_request", rid, c.Request.Method+" "+c.FullPath(),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
