package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hferrand/canto-field-go/internal/canto"
	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/resolver"
	"github.com/hferrand/canto-field-go/internal/validation"
)

type ResolveRequest struct {
	Value string `json:"value" validate:"required,max=2000"`
}

// FieldRenderer is the slice of the field boundary this handler needs.
type FieldRenderer interface {
	RenderField(ctx context.Context, stored string) (*model.AssetRecord, error)
}

// ResolveHandler is the import-glue entrypoint: it resolves one arbitrary
// stored reference. A reference that cannot be resolved is a per-item 404,
// never an aborting error, so batch callers can report partial success. A
// missing upstream configuration is a 503 with an explanatory message.
func ResolveHandler(fld FieldRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid JSON body", err)
			return
		}
		if err := validation.ValidateStruct(&req); err != nil {
			errsJson, jsonErr := validation.ErrorsToJson(err)
			if jsonErr != nil {
				WriteError(w, http.StatusInternalServerError, "Could not serialise validation errors", jsonErr)
				return
			}
			WriteError(w, http.StatusBadRequest, errsJson, nil)
			return
		}

		rec, err := fld.RenderField(r.Context(), req.Value)
		if err != nil {
			if errors.Is(err, canto.ErrNotConfigured) {
				WriteError(w, http.StatusServiceUnavailable, "Asset library is not configured", nil)
				return
			}
			if errors.Is(err, resolver.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not resolve reference", err)
			return
		}

		RespondJSON(w, http.StatusOK, rec)
		log.Printf("✅  Resolved reference to asset #%s", rec.ID)
	}
}
