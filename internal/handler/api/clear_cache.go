package api

import (
	"log"
	"net/http"

	"github.com/hferrand/canto-field-go/internal/port"
)

type ClearCacheResponse struct {
	Deleted int64 `json:"deleted"`
}

// ClearCacheHandler drops every cache entry under the reserved namespace.
// The host calls it on plugin deactivation and on explicit cache-clear.
func ClearCacheHandler(ca port.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := ca.InvalidateAll(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not clear the cache", err)
			return
		}

		RespondJSON(w, http.StatusOK, ClearCacheResponse{Deleted: deleted})
		log.Printf("✅  Cleared %d cached entries", deleted)
	}
}
