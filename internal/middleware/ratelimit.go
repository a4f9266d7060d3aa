package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/metrics"
	"github.com/BruksfildServices01/studio-manager/internal/ratelimit"
)

// RateLimit limits requests per client IP. Limiter errors let the request
// through.
func RateLimit(l ratelimit.Limiter, m *metrics.HTTP, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			Logger(c, log).Warn("rate limiter unavailable", zap.Error(err))
		}

		if !ok {
			if m != nil {
				m.Limited.Inc()
			}
			httperr.Abort(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, please try again later.")
			return
		}

		c.Next()
	}
}
