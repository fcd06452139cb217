package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/catalog"
	"career-compass/internal/repository"

	"go.uber.org/zap"
)

var ErrSkillNotFound = errors.New("skill not found")

type ResourceItem struct {
	SkillName     string
	Name          string
	Type          string
	URL           string
	DurationWeeks float64
	Difficulty    string
	Source        string
}

type ResourceUsecase interface {
	ListSkills() []catalog.Skill
	SkillDetails(name string) (catalog.Skill, error)
	ResourcesForSkill(ctx context.Context, skill string) ([]ResourceItem, error)
}

type Resources struct {
	catalog *catalog.Store
	repo    repository.LearningResourceRepository
	cache   Cache
	logger  *zap.Logger
}

func NewResourceUsecase(store *catalog.Store, repo repository.LearningResourceRepository, cache Cache, logger *zap.Logger) *Resources {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resources{catalog: store, repo: repo, cache: cache, logger: logger}
}

func (u *Resources) ListSkills() []catalog.Skill {
	return u.catalog.Skills()
}

func (u *Resources) SkillDetails(name string) (catalog.Skill, error) {
	skill, ok := u.catalog.Skill(name)
	if !ok {
		return catalog.Skill{}, ErrSkillNotFound
	}
	return skill, nil
}

func (u *Resources) ResourcesForSkill(ctx context.Context, skill string) ([]ResourceItem, error) {
	skill = strings.TrimSpace(skill)

	key := ResourcesCacheKey(skill)
	if u.cache != nil {
		var cached []ResourceItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			u.logger.Debug("resource cache hit", zap.String("key", key))
			return cached, nil
		}
		u.logger.Debug("resource cache miss", zap.String("key", key))
	}

	out := u.mergeResources(ctx, skill)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}

func (u *Resources) mergeResources(ctx context.Context, skill string) []ResourceItem {
	out := make([]ResourceItem, 0)
	seen := make(map[string]struct{})
	for _, r := range u.catalog.Resources(skill) {
		out = append(out, ResourceItem{
			SkillName:     r.SkillName,
			Name:          r.Name,
			Type:          r.Type,
			URL:           r.URL,
			DurationWeeks: r.DurationWeeks,
			Difficulty:    r.Difficulty,
			Source:        "catalog",
		})
		seen[r.URL] = struct{}{}
	}

	if u.repo == nil {
		return out
	}

	fetched, err := u.repo.FindBySkill(ctx, skill)
	if err != nil {
		u.logger.Warn("fetched resources unavailable, serving catalog only",
			zap.String("skill", skill), zap.Error(err))
		return out
	}
	for _, r := range fetched {
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		out = append(out, ResourceItem{
			SkillName:     r.SkillName,
			Name:          r.Name,
			Type:          r.Type,
			URL:           r.URL,
			DurationWeeks: r.DurationWeeks,
			Difficulty:    r.Difficulty,
			Source:        r.Source,
		})
	}
	return out
}
