package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/hferrand/canto-field-go/internal/api_context"
)

// WithRequestID tags every inbound request with an id that the logger
// attaches to each record emitted under that request's context.
func WithRequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", rid)

			ctx := context.WithValue(r.Context(), api_context.RequestIDKey, rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
