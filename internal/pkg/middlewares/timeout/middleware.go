package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware bounds every request context by limit. The parent is the
// server BaseContext, so shutdown and the deadline both cancel handlers.
func Middleware(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
