package mock

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// CantoAPI implements upstream client behaviour for tests.
type CantoAPI struct {
	SearchOut  *port.SearchResult
	AssetOut   json.RawMessage
	TreeOut     []model.TreeNode
	AlbumOut    *port.SearchResult
	PreviewOut  string
	PreviewType string

	SearchErr  error
	AssetErr   error
	TreeErr    error
	AlbumErr   error
	PreviewErr error

	// call flags and recorded inputs
	SearchCalled  bool
	AssetCalled   bool
	TreeCalled    bool
	AlbumCalled   bool
	PreviewCalled bool

	SearchQuery  string
	SearchOpts   port.SearchOptions
	SearchCalls  int
	AssetID      string
	AssetScheme  model.Scheme
	AssetCalls   int
	AlbumID      string
	PreviewID    string
	PreviewSchem model.Scheme
}

func (m *CantoAPI) Search(ctx context.Context, query string, opts port.SearchOptions) (*port.SearchResult, error) {
	m.SearchCalled = true
	m.SearchCalls++
	m.SearchQuery = query
	m.SearchOpts = opts
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	if m.SearchOut == nil {
		return &port.SearchResult{}, nil
	}
	return m.SearchOut, nil
}

func (m *CantoAPI) GetAsset(ctx context.Context, id string, scheme model.Scheme) (json.RawMessage, error) {
	m.AssetCalled = true
	m.AssetCalls++
	m.AssetID = id
	m.AssetScheme = scheme
	if m.AssetErr != nil {
		return nil, m.AssetErr
	}
	return m.AssetOut, nil
}

func (m *CantoAPI) GetTree(ctx context.Context) ([]model.TreeNode, error) {
	m.TreeCalled = true
	if m.TreeErr != nil {
		return nil, m.TreeErr
	}
	return m.TreeOut, nil
}

func (m *CantoAPI) GetAlbumAssets(ctx context.Context, albumID string) (*port.SearchResult, error) {
	m.AlbumCalled = true
	m.AlbumID = albumID
	if m.AlbumErr != nil {
		return nil, m.AlbumErr
	}
	if m.AlbumOut == nil {
		return &port.SearchResult{}, nil
	}
	return m.AlbumOut, nil
}

func (m *CantoAPI) StreamPreview(ctx context.Context, scheme model.Scheme, id string) (io.ReadCloser, string, error) {
	m.PreviewCalled = true
	m.PreviewID = id
	m.PreviewSchem = scheme
	if m.PreviewErr != nil {
		return nil, "", m.PreviewErr
	}
	return io.NopCloser(strings.NewReader(m.PreviewOut)), m.PreviewType, nil
}
