package port

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hferrand/canto-field-go/internal/model"
)

const (
	// DefaultSearchLimit is applied when the caller does not set one.
	DefaultSearchLimit = 50
	// MaxSearchLimit is a hard cap; larger requested limits are clamped.
	MaxSearchLimit = 100
)

// SearchOptions are the effective parameters of a search call. Zero values
// mean "use the default"; Normalized resolves them so that two equivalent
// call sites always produce the same canonical descriptor.
type SearchOptions struct {
	Limit         int            `json:"limit"`
	Start         int            `json:"start"`
	Schemes       []model.Scheme `json:"schemes"`
	Operator      string         `json:"operator"`        // and|or
	SortBy        string         `json:"sort_by"`         // time|name|scheme|size
	SortDirection string         `json:"sort_direction"`  // ascending|descending
	SearchInField string         `json:"search_in_field"` // empty = all fields
}

// Normalized returns a copy with defaults applied, the limit clamped and
// the scheme filter sorted.
func (o SearchOptions) Normalized() SearchOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultSearchLimit
	}
	if o.Limit > MaxSearchLimit {
		o.Limit = MaxSearchLimit
	}
	if o.Start < 0 {
		o.Start = 0
	}
	if len(o.Schemes) == 0 {
		o.Schemes = append([]model.Scheme(nil), model.AllSchemes...)
	} else {
		o.Schemes = append([]model.Scheme(nil), o.Schemes...)
	}
	sort.Slice(o.Schemes, func(i, j int) bool { return o.Schemes[i] < o.Schemes[j] })
	if o.Operator != "or" {
		o.Operator = "and"
	}
	if o.SortBy == "" {
		o.SortBy = "time"
	}
	if o.SortDirection != "ascending" {
		o.SortDirection = "descending"
	}
	return o
}

// Canonical renders the normalized options as a stable descriptor string,
// used for cache-key derivation.
func (o SearchOptions) Canonical() string {
	n := o.Normalized()
	schemes := make([]string, len(n.Schemes))
	for i, s := range n.Schemes {
		schemes[i] = string(s)
	}
	return fmt.Sprintf("limit=%d&start=%d&schemes=%s&op=%s&sort=%s.%s&field=%s",
		n.Limit, n.Start, strings.Join(schemes, ","), n.Operator, n.SortBy, n.SortDirection, n.SearchInField)
}

// SearchResult is the raw outcome of a search call: the upstream items plus
// the pagination echo.
type SearchResult struct {
	Found   int               `json:"found"`
	Limit   int               `json:"limit"`
	Start   int               `json:"start"`
	Results []json.RawMessage `json:"results"`
}

// CantoAPI issues authenticated read requests against the upstream DAM
// service. Successful search and get-asset payloads are written through to
// the cache before being returned.
type CantoAPI interface {
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error)
	// GetAsset fetches one asset by id. An empty scheme probes the
	// per-type endpoints (image, video, document) in order, since the
	// upstream has no unified lookup.
	GetAsset(ctx context.Context, id string, scheme model.Scheme) (json.RawMessage, error)
	GetTree(ctx context.Context) ([]model.TreeNode, error)
	GetAlbumAssets(ctx context.Context, albumID string) (*SearchResult, error)
	// StreamPreview opens the authenticated preview binary of an asset and
	// returns the body stream plus its content type.
	StreamPreview(ctx context.Context, scheme model.Scheme, id string) (io.ReadCloser, string, error)
}
