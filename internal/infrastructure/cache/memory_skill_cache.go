package cache

import (
	"context"
	"sync"
	"time"

	"github.com/volhub/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// InMemorySkillCache implements catalog.SkillCache with a single in-process
// entry. The catalog is one list, so there is no keyed map and no cleanup
// goroutine; the entry expires lazily on read.
type InMemorySkillCache struct {
	mu        sync.RWMutex
	skills    []*catalog.Skill
	expiresAt time.Time
	logger    *zap.Logger
}

// InMemorySkillCacheOption is a functional option for configuring the cache
type InMemorySkillCacheOption func(*InMemorySkillCache)

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemorySkillCacheOption {
	return func(c *InMemorySkillCache) {
		c.logger = logger
	}
}

// NewInMemorySkillCache creates a new in-memory skill catalog cache
func NewInMemorySkillCache(opts ...InMemorySkillCacheOption) *InMemorySkillCache {
	cache := &InMemorySkillCache{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get returns the cached catalog, or (nil, nil) on a miss
func (c *InMemorySkillCache) Get(ctx context.Context) ([]*catalog.Skill, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.skills == nil || time.Now().After(c.expiresAt) {
		c.logger.Debug("Cache miss for skill catalog")
		return nil, nil
	}

	c.logger.Debug("Cache hit for skill catalog")
	return c.skills, nil
}

// Set stores the catalog with the given TTL
func (c *InMemorySkillCache) Set(ctx context.Context, skills []*catalog.Skill, ttl time.Duration) error {
	if skills == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.skills = skills
	c.expiresAt = time.Now().Add(ttl)

	c.logger.Debug("Cached skill catalog",
		zap.Int("count", len(skills)),
		zap.Duration("ttl", ttl))
	return nil
}

// Invalidate drops the cached catalog
func (c *InMemorySkillCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.skills = nil
	c.logger.Debug("Invalidated skill catalog cache")
	return nil
}

// Close releases any resources held by the cache
func (c *InMemorySkillCache) Close() error {
	return nil
}

// Ensure InMemorySkillCache implements SkillCache
var _ catalog.SkillCache = (*InMemorySkillCache)(nil)
