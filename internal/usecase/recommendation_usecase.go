package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/similarity"

	"go.uber.org/zap"
)

var (
	ErrCareerNotFound = errors.New("career not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
)

const (
	defaultMatchCount   = 5
	maxMatchCount       = 20
	defaultSimilarCount = 3

	similarityWeight = 0.4
	overlapWeight    = 0.6
)

type RecommendParams struct {
	Skills    []string
	Interests string
	TopN      int
}

type CareerMatch struct {
	CareerID        string
	Name            string
	Category        string
	Description     string
	RequiredSkills  []string
	MatchScore      float64
	SimilarityScore float64
	OverlapScore    float64
	Known           []string
	Partial         []string
	Missing         []string
	AvgSalary       int
	GrowthRate      float64
}

type SimilarCareer struct {
	CareerID   string
	Name       string
	Category   string
	Similarity float64
}

type RecommendationUsecase interface {
	MatchCareers(ctx context.Context, params RecommendParams) ([]CareerMatch, error)
	ListCareers(category string) []catalog.Career
	CareerDetails(id string) (catalog.Career, error)
	SimilarCareers(id string, topN int) ([]SimilarCareer, error)
}

type Recommendation struct {
	catalog *catalog.Store
	index   *similarity.Index
	cache   Cache
	logger  *zap.Logger
}

func NewRecommendationUsecase(store *catalog.Store, cache Cache, logger *zap.Logger) *Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}
	careers := store.Careers()
	corpus := make([]string, 0, len(careers))
	for _, c := range careers {
		corpus = append(corpus, c.CompositeText())
	}
	return &Recommendation{
		catalog: store,
		index:   similarity.NewIndex(corpus),
		cache:   cache,
		logger:  logger,
	}
}

func (u *Recommendation) MatchCareers(ctx context.Context, params RecommendParams) ([]CareerMatch, error) {
	topN := params.TopN
	if topN <= 0 {
		topN = defaultMatchCount
	}
	if topN > maxMatchCount {
		topN = maxMatchCount
	}

	skills := make([]string, 0, len(params.Skills))
	for _, s := range params.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	params.Skills = skills
	params.TopN = topN

	cacheKey := ""
	if u.cache != nil {
		cacheKey = RecommendationsCacheKey(params)
		var cached []CareerMatch
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Debug("recommendations cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
		u.logger.Debug("recommendations cache miss", zap.String("key", cacheKey))
	}

	query := strings.Join(skills, " ")
	if interests := strings.TrimSpace(params.Interests); interests != "" {
		if query == "" {
			query = interests
		} else {
			query += " " + interests
		}
	}

	careers := u.catalog.Careers()
	sims := u.index.Score(query)

	matches := make([]CareerMatch, 0, len(careers))
	for i, career := range careers {
		res := matching.Calculate(skills, career.RequiredSkills)
		sim := 0.0
		if i < len(sims) {
			sim = sims[i]
		}
		blended := sim*similarityWeight + res.Score*overlapWeight
		matches = append(matches, CareerMatch{
			CareerID:        career.ID,
			Name:            career.Name,
			Category:        career.Category,
			Description:     career.Description,
			RequiredSkills:  career.RequiredSkills,
			MatchScore:      blended * 100,
			SimilarityScore: sim * 100,
			OverlapScore:    res.Score * 100,
			Known:           res.Known,
			Partial:         res.Partial,
			Missing:         res.Missing,
			AvgSalary:       career.AvgSalary,
			GrowthRate:      career.GrowthRate,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > topN {
		matches = matches[:topN]
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, matches, 0)
		u.logger.Debug("recommendations cache set", zap.String("key", cacheKey))
	}
	return matches, nil
}

func (u *Recommendation) ListCareers(category string) []catalog.Career {
	category = strings.TrimSpace(category)
	if category == "" {
		return u.catalog.Careers()
	}
	return u.catalog.CareersByCategory(category)
}

func (u *Recommendation) CareerDetails(id string) (catalog.Career, error) {
	career, ok := u.catalog.Career(strings.TrimSpace(id))
	if !ok {
		return catalog.Career{}, ErrCareerNotFound
	}
	return career, nil
}

func (u *Recommendation) SimilarCareers(id string, topN int) ([]SimilarCareer, error) {
	career, ok := u.catalog.Career(strings.TrimSpace(id))
	if !ok {
		return nil, ErrCareerNotFound
	}
	if topN <= 0 {
		topN = defaultSimilarCount
	}

	careers := u.catalog.Careers()
	sims := u.index.Score(career.SimilarityText())

	type scored struct {
		career catalog.Career
		sim    float64
	}
	candidates := make([]scored, 0, len(careers))
	for i, c := range careers {
		if c.ID == career.ID {
			continue
		}
		sim := 0.0
		if i < len(sims) {
			sim = sims[i]
		}
		candidates = append(candidates, scored{career: c, sim: sim})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sim > candidates[j].sim
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	out := make([]SimilarCareer, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, SimilarCareer{
			CareerID:   c.career.ID,
			Name:       c.career.Name,
			Category:   c.career.Category,
			Similarity: c.sim * 100,
		})
	}
	return out, nil
}
