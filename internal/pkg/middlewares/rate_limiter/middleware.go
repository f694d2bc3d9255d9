package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dashboard/internal/generated/dto"
	"dashboard/internal/pkg/middlewares/route"
	"dashboard/pkg/logger"
)

// Middleware rejects requests with 429 once limiter runs dry. limit is only
// advertised in X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(limit)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			template := route.Template(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, template).Inc()

			requestLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", template),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			requestLog.Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			err := json.NewEncoder(w).Encode(dto.Error{
				Code:    dto.TooManyRequests,
				Message: "rate limit exceeded, try again later",
			})
			if err != nil {
				requestLog.With(logger.NewField("error", err)).Error("failed to write rate limit response")
			}
		})
	}
}
