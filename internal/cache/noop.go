package cache

import (
	"context"

	"github.com/hferrand/canto-field-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) Set(ctx context.Context, key string, data []byte) error { return nil }

func (n *NoopCache) InvalidateAll(ctx context.Context) (int64, error) { return 0, nil }
