package port

import "context"

// Cache is a transient, namespaced key/value store. A nil value with a nil
// error is a miss. Entries expire on a fixed TTL and are never updated in
// place; concurrent writers of the same key are idempotent because every
// cached value is derived and re-derivable.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	// InvalidateAll removes every entry under the reserved namespace and
	// returns how many were deleted. Unrelated keys are left untouched.
	InvalidateAll(ctx context.Context) (int64, error)
}
