// Package cache provides local caching for prepared layouts and rendered
// artifacts. Analysis results are never cached - they are cheap, pure
// functions of the network - but Graphviz rendering is not, so layouts and
// images are stored keyed by content hashes of their inputs.
package cache

import (
	"context"
	"time"
)

// TTLs for the different cached item kinds. Layouts and artifacts are pure
// functions of their keys, so the TTLs exist only to bound disk usage.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache stores opaque byte blobs under string keys.
//
// Implementations: [FileCache] for persistent local storage, [NullCache]
// to disable caching.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts fingerprint the options that influence layout generation.
type LayoutKeyOpts struct {
	Engine    string
	Highlight []string
}

// ArtifactKeyOpts fingerprint the options that influence artifact rendering.
type ArtifactKeyOpts struct {
	Format string
}

// Keyer derives cache keys from content hashes and option fingerprints.
type Keyer interface {
	// LayoutKey keys a prepared layout by the network content hash.
	LayoutKey(networkHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by the layout content hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(networkHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", networkHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
