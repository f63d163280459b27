package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/hferrand/canto-field-go/internal/port"
)

// Namespace is the reserved key prefix. Bulk invalidation on deactivation
// deletes this namespace only, so unrelated cached data survives.
const Namespace = "canto_field:"

// TTL is the fixed lifetime of every entry. No sliding expiration, no
// per-entry override.
const TTL = time.Hour

// SearchKey derives the cache key of a search request from its semantic
// content: the query text plus the canonical form of the effective options.
// Equivalent requests collide regardless of call-site option ordering.
func SearchKey(query string, opts port.SearchOptions) string {
	return Namespace + "search:" + digest(query+"|"+opts.Canonical())
}

// AssetKey derives the cache key of a get-by-id payload.
func AssetKey(id string) string {
	return Namespace + "asset:" + digest(id)
}

// RecordKey derives the cache key of a formatted record rendering.
func RecordKey(id string) string {
	return Namespace + "record:" + digest(id)
}

// EtagKey derives the cache key of a rendering's ETag.
func EtagKey(id string) string {
	return Namespace + "etag:" + digest(id)
}

func digest(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
