package api

import (
	"log"
	"net/http"

	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// TreeHandler returns the album/folder tree the picker navigates.
func TreeHandler(svc port.CantoAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tree, err := svc.GetTree(r.Context())
		if err != nil {
			WriteError(w, http.StatusBadGateway, "Could not load the library tree", err)
			return
		}
		if tree == nil {
			tree = []model.TreeNode{}
		}

		RespondJSON(w, http.StatusOK, tree)
		log.Printf("✅  Returned library tree with %d top-level nodes", len(tree))
	}
}

// AlbumAssetsHandler lists the formatted assets of one album.
func AlbumAssetsHandler(svc port.CantoAPI, fmtr port.AssetFormatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Album ID is required", nil)
			return
		}

		sr, err := svc.GetAlbumAssets(r.Context(), albumID)
		if err != nil {
			WriteError(w, http.StatusBadGateway, "Could not load album assets", err)
			return
		}

		resp := SearchResponse{Found: sr.Found, Limit: sr.Limit, Start: sr.Start, Results: []*model.AssetRecord{}}
		for _, item := range sr.Results {
			rec, err := fmtr.FormatFromSearch(item)
			if err != nil {
				continue
			}
			resp.Results = append(resp.Results, rec)
		}

		RespondJSON(w, http.StatusOK, resp)
		log.Printf("✅  Returned %d assets for album #%s", len(resp.Results), albumID)
	}
}
