package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dashboard/internal/pkg/middlewares/route"
	"dashboard/pkg/logger"
)

// Middleware records latency and status per route and writes an access log
// line. Server errors are logged at warn level.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			status := strconv.Itoa(rw.statusCode)
			template := route.Template(r)

			HTTPRequestDuration.WithLabelValues(r.Method, template, status).Observe(elapsed.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, template, status).Inc()

			accessLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", template),
				logger.NewField("status", rw.statusCode),
				logger.NewField("duration", elapsed.String()),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				accessLog.Warn("HTTP request failed")
				return
			}
			accessLog.Info("HTTP request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *statusRecorder) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}
