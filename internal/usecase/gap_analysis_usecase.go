package usecase

import (
	"context"
	"strings"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/plan"
	"career-compass/internal/domain/readiness"
	"career-compass/internal/domain/simulation"

	"go.uber.org/zap"
)

type GapReport struct {
	CareerID     string
	CareerName   string
	Analysis     gap.Analysis
	Score        readiness.Score
	Suggestions  []readiness.Suggestion
	RiskLevel    string
	LearningPath []gap.SkillDetail
	Phases       []plan.Phase
	Timeline     string
}

type GapAnalysisUsecase interface {
	AnalyzeGap(ctx context.Context, careerID string, skills []string) (GapReport, error)
	CompareCareers(ctx context.Context, skills []string, careerIDs []string) ([]readiness.RankedScore, error)
}

type GapAnalysis struct {
	catalog *catalog.Store
	cache   Cache
	logger  *zap.Logger
}

func NewGapAnalysisUsecase(store *catalog.Store, cache Cache, logger *zap.Logger) *GapAnalysis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GapAnalysis{catalog: store, cache: cache, logger: logger}
}

func (u *GapAnalysis) AnalyzeGap(ctx context.Context, careerID string, skills []string) (GapReport, error) {
	career, ok := u.catalog.Career(strings.TrimSpace(careerID))
	if !ok {
		return GapReport{}, ErrCareerNotFound
	}

	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
	}

	cacheKey := ""
	if u.cache != nil {
		cacheKey = GapAnalysisCacheKey(career.ID, cleaned)
		var cached GapReport
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Debug("gap analysis cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
		u.logger.Debug("gap analysis cache miss", zap.String("key", cacheKey))
	}

	report := u.buildReport(career, cleaned)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, report, 0)
		u.logger.Debug("gap analysis cache set", zap.String("key", cacheKey))
	}
	return report, nil
}

func (u *GapAnalysis) CompareCareers(ctx context.Context, skills []string, careerIDs []string) ([]readiness.RankedScore, error) {
	ids := make([]string, 0, len(careerIDs))
	for _, id := range careerIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrInvalidInput
	}

	entries := make([]readiness.RankedScore, 0, len(ids))
	for _, id := range ids {
		career, ok := u.catalog.Career(id)
		if !ok {
			return nil, ErrCareerNotFound
		}
		analysis := gap.Analyze(skills, target(career), u.catalog.MetaFor(career.RequiredSkills))
		score := readiness.Calculate(analysis, nil)
		entries = append(entries, readiness.RankedScore{
			Career:  career.Name,
			Overall: score.Overall,
			Grade:   score.Grade,
		})
	}
	return readiness.Rank(entries), nil
}

func (u *GapAnalysis) buildReport(career catalog.Career, skills []string) GapReport {
	meta := u.catalog.MetaFor(career.RequiredSkills)
	analysis := gap.Analyze(skills, target(career), meta)
	score := readiness.Calculate(analysis, nil)

	return GapReport{
		CareerID:     career.ID,
		CareerName:   career.Name,
		Analysis:     analysis,
		Score:        score,
		Suggestions:  readiness.Suggestions(score, analysis),
		RiskLevel:    simulation.RiskLevel(score.Overall, analysis.GapPercent),
		LearningPath: gap.LearningPath(analysis.Details),
		Phases:       plan.WeeklyPhases(analysis.Missing, analysis.Partial, meta, 0),
		Timeline:     plan.FormatTimeline(analysis.LearningWeeks),
	}
}

func target(c catalog.Career) gap.Target {
	return gap.Target{
		Career:   c.Name,
		Required: c.RequiredSkills,
		Weights:  c.Weights,
	}
}
