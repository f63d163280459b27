package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

type SearchResponse struct {
	Found   int                  `json:"found"`
	Limit   int                  `json:"limit"`
	Start   int                  `json:"start"`
	Results []*model.AssetRecord `json:"results"`
}

// SearchAssetsHandler serves the picker's search box. When a selected id is
// passed and still resolves, its record is moved to the front of the list
// so the UI can highlight the current selection.
func SearchAssetsHandler(svc port.CantoAPI, fmtr port.AssetFormatter, res port.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		opts := port.SearchOptions{}
		if v := r.URL.Query().Get("limit"); v != "" {
			opts.Limit, _ = strconv.Atoi(v)
		}
		if v := r.URL.Query().Get("start"); v != "" {
			opts.Start, _ = strconv.Atoi(v)
		}
		if v := r.URL.Query().Get("scheme"); v != "" {
			if s, ok := model.ParseScheme(v); ok {
				opts.Schemes = []model.Scheme{s}
			}
		}

		sr, err := svc.Search(r.Context(), q, opts)
		if err != nil {
			WriteError(w, http.StatusBadGateway, "Could not search the asset library", err)
			return
		}

		resp := SearchResponse{Found: sr.Found, Limit: sr.Limit, Start: sr.Start}
		for _, item := range sr.Results {
			rec, err := fmtr.FormatFromSearch(item)
			if err != nil {
				continue // skip malformed items, logged by the formatter
			}
			resp.Results = append(resp.Results, rec)
		}

		if selected := r.URL.Query().Get("selected"); selected != "" {
			resp.Results = promoteSelected(r, res, selected, resp.Results)
		}
		if resp.Results == nil {
			resp.Results = []*model.AssetRecord{}
		}

		RespondJSON(w, http.StatusOK, resp)
		log.Printf("✅  Search %q returned %d of %d assets", q, len(resp.Results), resp.Found)
	}
}

func promoteSelected(r *http.Request, res port.Resolver, selected string, records []*model.AssetRecord) []*model.AssetRecord {
	rec, err := res.Resolve(r.Context(), selected)
	if err != nil {
		return records
	}

	out := []*model.AssetRecord{rec}
	for _, other := range records {
		if other.ID != rec.ID {
			out = append(out, other)
		}
	}
	return out
}
