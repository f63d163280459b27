package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hferrand/canto-field-go/internal/mock"
	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

func TestSearchAssetsHandler_EmptyResultIsOK(t *testing.T) {
	api := &mock.CantoAPI{SearchOut: &port.SearchResult{Found: 0}}
	h := SearchAssetsHandler(api, &mock.AssetFormatter{}, &mock.Resolver{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/search?q=nothing", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for zero results", rec.Code)
	}

	var resp SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Errorf("results = %#v, want empty list", resp.Results)
	}
}

func TestSearchAssetsHandler_FormatsResults(t *testing.T) {
	api := &mock.CantoAPI{SearchOut: &port.SearchResult{
		Found:   2,
		Limit:   50,
		Results: []json.RawMessage{[]byte(`{}`), []byte(`{}`)},
	}}
	fmtr := &mock.AssetFormatter{Records: []*model.AssetRecord{
		{ID: "one"}, {ID: "two"},
	}}
	h := SearchAssetsHandler(api, fmtr, &mock.Resolver{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/search?q=logo&limit=5&scheme=image", nil))

	if api.SearchQuery != "logo" {
		t.Errorf("query = %q", api.SearchQuery)
	}
	if api.SearchOpts.Limit != 5 {
		t.Errorf("limit = %d", api.SearchOpts.Limit)
	}
	if len(api.SearchOpts.Schemes) != 1 || api.SearchOpts.Schemes[0] != model.SchemeImage {
		t.Errorf("schemes = %v", api.SearchOpts.Schemes)
	}

	var resp SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if len(resp.Results) != 2 || resp.Results[0].ID != "one" {
		t.Errorf("results = %+v", resp.Results)
	}
}

func TestSearchAssetsHandler_SelectedIsPromoted(t *testing.T) {
	api := &mock.CantoAPI{SearchOut: &port.SearchResult{
		Found:   2,
		Results: []json.RawMessage{[]byte(`{}`), []byte(`{}`)},
	}}
	fmtr := &mock.AssetFormatter{Records: []*model.AssetRecord{
		{ID: "one"}, {ID: "sel"},
	}}
	res := &mock.Resolver{Out: &model.AssetRecord{ID: "sel"}}
	h := SearchAssetsHandler(api, fmtr, res)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/search?q=logo&selected=sel", nil))

	var resp SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("results = %+v, want deduplicated promotion", resp.Results)
	}
	if resp.Results[0].ID != "sel" {
		t.Errorf("first result = %q, want the selection", resp.Results[0].ID)
	}
}

func TestSearchAssetsHandler_UpstreamFailure(t *testing.T) {
	api := &mock.CantoAPI{SearchErr: errors.New("down")}
	h := SearchAssetsHandler(api, &mock.AssetFormatter{}, &mock.Resolver{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/search?q=logo", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
