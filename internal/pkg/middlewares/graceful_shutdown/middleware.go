package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"dashboard/internal/generated/dto"
)

// Middleware answers 503 once the server is draining and ongoingCtx has been
// cancelled. Requests admitted before that run to completion.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.Error{
					Code:    dto.ShuttingDown,
					Message: "service is shutting down",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
