package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volhub/backend/internal/domain/catalog"
	"github.com/volhub/backend/internal/infrastructure/config"
)

func newTestSkills(t *testing.T, names ...string) []*catalog.Skill {
	t.Helper()
	skills := make([]*catalog.Skill, len(names))
	for i, name := range names {
		skill, err := catalog.NewSkill(name)
		require.NoError(t, err)
		skills[i] = skill
	}
	return skills
}

func TestInMemorySkillCache_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cache misses", func(t *testing.T) {
		c := NewInMemorySkillCache()
		defer c.Close()

		skills, err := c.Get(ctx)

		require.NoError(t, err)
		assert.Nil(t, skills)
	})

	t.Run("set then get returns the catalog", func(t *testing.T) {
		c := NewInMemorySkillCache()
		defer c.Close()

		stored := newTestSkills(t, "First Aid", "Teaching")
		require.NoError(t, c.Set(ctx, stored, time.Minute))

		skills, err := c.Get(ctx)

		require.NoError(t, err)
		require.Len(t, skills, 2)
		assert.Equal(t, "First Aid", skills[0].Name)
	})

	t.Run("expired entry misses", func(t *testing.T) {
		c := NewInMemorySkillCache()
		defer c.Close()

		require.NoError(t, c.Set(ctx, newTestSkills(t, "Teaching"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		skills, err := c.Get(ctx)

		require.NoError(t, err)
		assert.Nil(t, skills)
	})

	t.Run("nil catalog is ignored", func(t *testing.T) {
		c := NewInMemorySkillCache()
		defer c.Close()

		require.NoError(t, c.Set(ctx, nil, time.Minute))

		skills, err := c.Get(ctx)

		require.NoError(t, err)
		assert.Nil(t, skills)
	})
}

func TestInMemorySkillCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewInMemorySkillCache()
	defer c.Close()

	require.NoError(t, c.Set(ctx, newTestSkills(t, "Teaching"), time.Minute))
	require.NoError(t, c.Invalidate(ctx))

	skills, err := c.Get(ctx)

	require.NoError(t, err)
	assert.Nil(t, skills)
}

func TestSkillCacheFactory_CreateCache(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		factory := NewSkillCacheFactory(
			config.CacheConfig{Backend: "memory"},
			config.RedisConfig{},
		)

		cache, err := factory.CreateCache()

		require.NoError(t, err)
		assert.IsType(t, &InMemorySkillCache{}, cache)
	})

	t.Run("unknown backend", func(t *testing.T) {
		factory := NewSkillCacheFactory(
			config.CacheConfig{Backend: "memcached"},
			config.RedisConfig{},
		)

		cache, err := factory.CreateCache()

		assert.Nil(t, cache)
		assert.Error(t, err)
	})
}
