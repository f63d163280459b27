package port

import (
	"context"

	"github.com/hferrand/canto-field-go/internal/model"
)

// Resolver turns an opaque stored reference (URL, bare id, legacy filename,
// fixture token) into one canonical asset record, or reports not-found.
// Upstream failures never escape it; they surface as not-found and are
// logged with their underlying reason.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (*model.AssetRecord, error)
	// ResolveID fetches by a known asset id, skipping reference
	// classification entirely. Callers that already hold an id (routes
	// with an {id} segment) must use this; ids may contain separators
	// the stored-reference heuristics would misread.
	ResolveID(ctx context.Context, id string) (*model.AssetRecord, error)
}
