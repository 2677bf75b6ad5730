package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/tomasen/realip"
	"go.uber.org/zap"
)

// Logger middleware
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", m.Code),
				zap.Int64("bytes", m.Written),
				zap.Duration("duration", m.Duration),
				zap.String("ip", realip.FromRequest(r)),
				zap.String("origin", r.Header.Get("Origin")),
				zap.String("user_agent", r.UserAgent()),
			)
		})
	}
}
