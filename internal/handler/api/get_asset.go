package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/hferrand/canto-field-go/internal/port"
	"github.com/hferrand/canto-field-go/internal/resolver"
)

func GetAssetHandler(rend port.HTTPRenderer, res port.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := rend.RenderGetAsset(r.Context(), res, id)
		if err != nil {
			if errors.Is(err, resolver.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get asset details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached asset #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for asset #%s", id)
	}
}
