package api

import (
	"context"

	"github.com/hferrand/canto-field-go/internal/api_context"
)

func IDFromContext(ctx context.Context) (string, bool) {
	return api_context.AssetIDFromContext(ctx)
}
