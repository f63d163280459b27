package api

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// ThumbnailHandler streams the authenticated upstream preview of an asset,
// so records without a direct-access thumbnail still render an image.
func ThumbnailHandler(svc port.CantoAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheme, ok := model.ParseScheme(chi.URLParam(r, "scheme"))
		if !ok {
			WriteError(w, http.StatusBadRequest, "Unknown asset scheme", nil)
			return
		}
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		body, contentType, err := svc.StreamPreview(r.Context(), scheme, id)
		if err != nil {
			WriteError(w, http.StatusBadGateway, "Could not fetch thumbnail", err)
			return
		}
		defer func() { _ = body.Close() }()

		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := io.Copy(w, body); err != nil {
			log.Printf("❌  Thumbnail stream for #%s aborted: %v", id, err)
			return
		}
		log.Printf("✅  Streamed thumbnail for %s #%s", scheme, id)
	}
}
