package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/volhub/backend/internal/domain/catalog"
	"github.com/volhub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const skillCatalogKey = "skills:catalog"

// RedisSkillCache implements catalog.SkillCache using Redis
type RedisSkillCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	logger     *zap.Logger
}

// RedisSkillCacheOption is a functional option for configuring the cache
type RedisSkillCacheOption func(*RedisSkillCache)

// WithRedisLogger sets the logger for the cache
func WithRedisLogger(logger *zap.Logger) RedisSkillCacheOption {
	return func(c *RedisSkillCache) {
		c.logger = logger
	}
}

// NewRedisSkillCache creates a new Redis-based skill catalog cache
func NewRedisSkillCache(cfg config.RedisConfig, opts ...RedisSkillCacheOption) (*RedisSkillCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisSkillCache{
		client:     client,
		ownsClient: true,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisSkillCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisSkillCacheWithClient(client *redis.Client, opts ...RedisSkillCacheOption) *RedisSkillCache {
	cache := &RedisSkillCache{
		client:     client,
		ownsClient: false,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get returns the cached catalog, or (nil, nil) on a miss
func (c *RedisSkillCache) Get(ctx context.Context) ([]*catalog.Skill, error) {
	data, err := c.client.Get(ctx, skillCatalogKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Cache miss for skill catalog")
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Failed to get skill catalog from cache", zap.Error(err))
		return nil, fmt.Errorf("failed to get skill catalog from cache: %w", err)
	}

	var skills []*catalog.Skill
	if err := json.Unmarshal(data, &skills); err != nil {
		c.logger.Error("Failed to unmarshal skill catalog", zap.Error(err))
		// Delete corrupted cache entry
		_ = c.client.Del(ctx, skillCatalogKey)
		return nil, fmt.Errorf("failed to unmarshal skill catalog: %w", err)
	}

	c.logger.Debug("Cache hit for skill catalog", zap.Int("count", len(skills)))
	return skills, nil
}

// Set stores the catalog with the given TTL
func (c *RedisSkillCache) Set(ctx context.Context, skills []*catalog.Skill, ttl time.Duration) error {
	if skills == nil {
		return nil
	}

	data, err := json.Marshal(skills)
	if err != nil {
		c.logger.Error("Failed to marshal skill catalog", zap.Error(err))
		return fmt.Errorf("failed to marshal skill catalog: %w", err)
	}

	if err := c.client.Set(ctx, skillCatalogKey, data, ttl).Err(); err != nil {
		c.logger.Error("Failed to set skill catalog in cache", zap.Error(err))
		return fmt.Errorf("failed to set skill catalog in cache: %w", err)
	}

	c.logger.Debug("Cached skill catalog",
		zap.Int("count", len(skills)),
		zap.Duration("ttl", ttl))
	return nil
}

// Invalidate drops the cached catalog
func (c *RedisSkillCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, skillCatalogKey).Err(); err != nil {
		c.logger.Error("Failed to delete skill catalog from cache", zap.Error(err))
		return fmt.Errorf("failed to delete skill catalog from cache: %w", err)
	}

	c.logger.Debug("Invalidated skill catalog cache")
	return nil
}

// Close releases any resources held by the cache
func (c *RedisSkillCache) Close() error {
	// Only close client if we own it
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ensure RedisSkillCache implements SkillCache
var _ catalog.SkillCache = (*RedisSkillCache)(nil)
