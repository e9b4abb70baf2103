// Package cache provides content-addressed caching for pipeline stages.
//
// Keys are derived from hashes of the inputs that influence a stage's
// output, so a cache entry is valid forever as far as correctness goes;
// TTLs exist only to bound disk and memory usage. Two backends ship with
// the CLI and server: a file cache under the user's cache directory and a
// Redis cache for shared deployments. NullCache disables caching without
// branching at call sites.
package cache

import (
	"context"
	"time"
)

// TTLs for cached pipeline stages. Entries are content-addressed, so
// these bound storage growth rather than freshness.
const (
	// TTLLayout is the lifetime of cached layout results.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached render artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL support.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer generates cache keys for the pipeline stages. Implementations
// must be deterministic: equal inputs produce equal keys.
type Keyer interface {
	// LayoutKey generates a key for a laid-out chart, derived from the
	// chart content hash and everything else that influences positions.
	LayoutKey(chartHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from
	// the layout content hash and the render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the layout inputs that participate in the cache key.
type LayoutKeyOpts struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	LevelHeight    float64 `json:"level_height"`
	ShapeGap       float64 `json:"shape_gap"`
	VerticalIndent float64 `json:"vertical_indent"`
}

// ArtifactKeyOpts are the render inputs that participate in the cache key.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	View     string  `json:"view"`
	Style    string  `json:"style"`
	Grid     bool    `json:"grid"`
	Detailed bool    `json:"detailed"`
	Scale    float64 `json:"scale"`
}

// DefaultKeyer generates hash-based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
