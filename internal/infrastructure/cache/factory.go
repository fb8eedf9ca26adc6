package cache

import (
	"fmt"

	"github.com/volhub/backend/internal/domain/catalog"
	"github.com/volhub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SkillCacheFactory creates skill catalog caches based on configuration
type SkillCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SkillCacheFactoryOption is a functional option for configuring the factory
type SkillCacheFactoryOption func(*SkillCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SkillCacheFactoryOption {
	return func(f *SkillCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) SkillCacheFactoryOption {
	return func(f *SkillCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSkillCacheFactory creates a new factory
func NewSkillCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...SkillCacheFactoryOption) *SkillCacheFactory {
	f := &SkillCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache creates a skill cache for the configured backend. With the redis
// backend, an unreachable Redis falls back to the in-memory cache unless
// fallback is disabled.
func (f *SkillCacheFactory) CreateCache() (catalog.SkillCache, error) {
	switch f.cacheConfig.Backend {
	case "memory":
		f.logger.Info("using in-memory skill catalog cache")
		return NewInMemorySkillCache(WithInMemoryLogger(f.logger)), nil

	case "redis":
		cache, err := NewRedisSkillCache(f.redisConfig, WithRedisLogger(f.logger))
		if err == nil {
			f.logger.Info("using Redis skill catalog cache")
			return cache, nil
		}

		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required for skill cache but unavailable: %w", err)
		}

		f.logger.Warn("Redis unavailable, falling back to in-memory skill catalog cache. "+
			"Cached catalogs will not be shared across process instances.",
			zap.Error(err),
		)
		return NewInMemorySkillCache(WithInMemoryLogger(f.logger)), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", f.cacheConfig.Backend)
	}
}
