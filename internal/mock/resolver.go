package mock

import (
	"context"

	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// Resolver implements resolution behaviour for tests.
type Resolver struct {
	Out *model.AssetRecord
	Err error

	Called   bool
	Ref      string
	IDCalled bool
	ID       string
}

func (r *Resolver) Resolve(ctx context.Context, ref string) (*model.AssetRecord, error) {
	r.Called = true
	r.Ref = ref
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Out, nil
}

func (r *Resolver) ResolveID(ctx context.Context, id string) (*model.AssetRecord, error) {
	r.IDCalled = true
	r.ID = id
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Out, nil
}

// HTTPRenderer implements rendering behaviour for tests.
type HTTPRenderer struct {
	Raw  []byte
	Etag string
	Err  error

	Called bool
	ID     string
}

func (r *HTTPRenderer) RenderGetAsset(ctx context.Context, res port.Resolver, id string) ([]byte, string, error) {
	r.Called = true
	r.ID = id
	if r.Err != nil {
		return nil, "", r.Err
	}
	return r.Raw, r.Etag, nil
}

// ThumbnailProxy returns a fixed local URL pattern for tests.
type ThumbnailProxy struct {
	Base string

	Called bool
}

func (t *ThumbnailProxy) ThumbnailURL(scheme model.Scheme, id string) string {
	t.Called = true
	base := t.Base
	if base == "" {
		base = "/thumbnail"
	}
	return base + "/" + string(scheme) + "/" + id
}
