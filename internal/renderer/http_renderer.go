package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/hferrand/canto-field-go/internal/cache"
	"github.com/hferrand/canto-field-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new port.HTTPRenderer implementation.
func NewHTTPRenderer(ca port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: ca}
}

// RenderGetAsset serves the formatted record either from cache or by
// fetching the known id upstream. It returns the JSON encoded record and a
// quoted ETag string. The id came in through an {id} route segment, so it
// is resolved as an id, never as an overloaded stored reference.
func (r *httpRenderer) RenderGetAsset(ctx context.Context, res port.Resolver, id string) ([]byte, string, error) {
	raw, err := r.cache.Get(ctx, cache.RecordKey(id))
	etagRaw, errEtag := r.cache.Get(ctx, cache.EtagKey(id))
	if err == nil && errEtag == nil && raw != nil && len(etagRaw) > 0 {
		return raw, string(etagRaw), nil
	}

	rec, err := res.ResolveID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(rec)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	_ = r.cache.Set(ctx, cache.RecordKey(id), raw)
	_ = r.cache.Set(ctx, cache.EtagKey(id), []byte(etag))

	return raw, etag, nil
}
