package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the resolver. It returns
// the JSON representation of a resolved record together with an ETag
// derived from it, serving both from cache when possible.
type HTTPRenderer interface {
	RenderGetAsset(ctx context.Context, res Resolver, id string) ([]byte, string, error)
}
