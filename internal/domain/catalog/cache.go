package catalog

import (
	"context"
	"time"
)

// SkillCache caches the full skill catalog. The catalog is static reference
// data, so a single list entry with a TTL is sufficient.
type SkillCache interface {
	// Get returns the cached catalog, or (nil, nil) on a miss
	Get(ctx context.Context) ([]*Skill, error)
	// Set stores the catalog with the given TTL
	Set(ctx context.Context, skills []*Skill, ttl time.Duration) error
	// Invalidate drops the cached catalog
	Invalidate(ctx context.Context) error
	// Close releases any resources held by the cache
	Close() error
}
