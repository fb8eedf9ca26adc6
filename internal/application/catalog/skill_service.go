package catalog

import (
	"context"
	"time"

	"github.com/volhub/backend/internal/domain/catalog"
	"github.com/volhub/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// SkillService serves the skill catalog with a read-through cache.
// Cache failures degrade to store reads, they never fail the request.
type SkillService struct {
	skillRepo catalog.SkillRepository
	cache     catalog.SkillCache
	cacheTTL  time.Duration
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo catalog.SkillRepository, cache catalog.SkillCache, cacheTTL time.Duration) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// List returns all skills ordered by name
func (s *SkillService) List(ctx context.Context) ([]SkillResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logger.L(ctx).Warn("Skill cache read failed", zap.Error(err))
		} else if cached != nil {
			return ToSkillResponses(cached), nil
		}
	}

	skills, err := s.skillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, skills, s.cacheTTL); err != nil {
			logger.L(ctx).Warn("Skill cache write failed", zap.Error(err))
		}
	}

	return ToSkillResponses(skills), nil
}
