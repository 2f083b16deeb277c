// Package cache provides content-addressed caching for analysis results.
//
// Building a suffix trie is quadratic in the input length and the substring
// series is worse, so hosts that see the same text repeatedly (the server,
// the watch TUI, repeated CLI runs) store serialized results under a key
// derived from a hash of the text and the layout options.
//
// # Backends
//
//   - [FileCache]: JSON files under a directory, for the CLI
//   - [RedisCache]: shared cache for multi-instance servers
//   - [NullCache]: caching disabled
//
// # Keys
//
// A [Keyer] turns content hashes and options into cache keys. Wrap it with
// [NewScopedKeyer] to give a deployment its own namespace:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "staging:")
//	key := keyer.AnalysisKey(cache.Hash([]byte(text)), cache.AnalysisKeyOpts{GuideStep: 5})
package cache

import (
	"context"
	"time"
)

// Cache TTLs.
const (
	// TTLAnalysis is how long an analysis result stays cached. Results are
	// a pure function of their key, so the TTL only bounds disk use.
	TTLAnalysis = 7 * 24 * time.Hour

	// TTLArtifact is how long a rendered artifact stays cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. A miss is reported as hit=false with a
	// nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
