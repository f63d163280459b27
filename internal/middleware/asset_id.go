package middleware

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/hferrand/canto-field-go/internal/api_context"
	"github.com/hferrand/canto-field-go/internal/handler/api"
)

// Asset IDs are opaque upstream tokens; only their alphabet is checked.
var assetIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func WithAssetID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			if !assetIDRE.MatchString(id) {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid asset ID", id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.AssetIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
