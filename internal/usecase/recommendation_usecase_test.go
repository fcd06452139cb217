package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"career-compass/internal/catalog"
)

type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	if _, ok := m.store[key]; ok {
		return false, nil
	}
	m.store[key] = []byte(value)
	return true, nil
}

func testCatalog() *catalog.Store {
	skills := []catalog.Skill{
		{Name: "Python", Category: "Programming", Difficulty: "beginner", LearningWeeks: 8},
		{Name: "SQL", Category: "Data", Difficulty: "beginner", LearningWeeks: 4},
		{Name: "Machine Learning", Category: "Data Science", Difficulty: "advanced", LearningWeeks: 10, Prerequisites: []string{"Python"}},
		{Name: "Figma", Category: "Design", Difficulty: "beginner", LearningWeeks: 3},
		{Name: "Communication", Category: "Soft Skills", Difficulty: "beginner", Continuous: true},
	}
	careers := []catalog.Career{
		{
			ID:             "data_engineer",
			Name:           "Data Engineer",
			Category:       "Data",
			Description:    "Builds pipelines that move and transform data",
			RequiredSkills: []string{"Python", "SQL"},
			Weights:        []float64{0.9, 0.8},
			AvgSalary:      110000,
			GrowthRate:     21.5,
		},
		{
			ID:             "ml_engineer",
			Name:           "ML Engineer",
			Category:       "Data Science",
			Description:    "Trains and ships machine learning systems",
			RequiredSkills: []string{"Python", "Machine Learning"},
			Weights:        []float64{0.9, 0.9},
			AvgSalary:      125000,
			GrowthRate:     26.0,
		},
		{
			ID:             "ux_designer",
			Name:           "UX Designer",
			Category:       "Design",
			Description:    "Crafts product interfaces around user research",
			RequiredSkills: []string{"Figma", "Communication"},
			Weights:        []float64{0.8, 0.7},
			AvgSalary:      95000,
			GrowthRate:     12.0,
		},
	}
	resources := []catalog.Resource{
		{SkillName: "Python", Name: "Python Crash Course", Type: "book", URL: "https://example.com/pcc", DurationWeeks: 6, Difficulty: "beginner"},
		{SkillName: "SQL", Name: "SQLBolt", Type: "interactive", URL: "https://sqlbolt.com", DurationWeeks: 2, Difficulty: "beginner"},
	}
	return catalog.New(skills, careers, resources)
}

func TestRecommendation_MatchCareers_RanksByBlendedScore(t *testing.T) {
	uc := NewRecommendationUsecase(testCatalog(), nil, nil)

	matches, err := uc.MatchCareers(context.Background(), RecommendParams{
		Skills: []string{"Python", "SQL"},
		TopN:   5,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	top := matches[0]
	if top.CareerID != "data_engineer" {
		t.Fatalf("expected data_engineer first, got %s", top.CareerID)
	}
	if top.OverlapScore != 100 {
		t.Fatalf("expected full overlap, got %f", top.OverlapScore)
	}
	if len(top.Known) != 2 || len(top.Missing) != 0 {
		t.Fatalf("unexpected skill split: known=%v missing=%v", top.Known, top.Missing)
	}
	if top.MatchScore < matches[1].MatchScore || matches[1].MatchScore < matches[2].MatchScore {
		t.Fatalf("matches not sorted descending: %f %f %f",
			top.MatchScore, matches[1].MatchScore, matches[2].MatchScore)
	}
	for _, m := range matches {
		if m.MatchScore < 0 || m.MatchScore > 100 {
			t.Fatalf("match score out of range: %f", m.MatchScore)
		}
	}
}

func TestRecommendation_MatchCareers_InterestsDriveQuery(t *testing.T) {
	uc := NewRecommendationUsecase(testCatalog(), nil, nil)

	matches, err := uc.MatchCareers(context.Background(), RecommendParams{
		Interests: "user research and product interfaces",
		TopN:      3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if matches[0].CareerID != "ux_designer" {
		t.Fatalf("expected ux_designer first, got %s", matches[0].CareerID)
	}
	if matches[0].OverlapScore != 0 {
		t.Fatalf("expected zero overlap without skills, got %f", matches[0].OverlapScore)
	}
}

func TestRecommendation_MatchCareers_EmptyInputIsGraceful(t *testing.T) {
	uc := NewRecommendationUsecase(testCatalog(), nil, nil)

	matches, err := uc.MatchCareers(context.Background(), RecommendParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected all careers, got %d", len(matches))
	}
	if matches[0].CareerID != "data_engineer" || matches[1].CareerID != "ml_engineer" {
		t.Fatalf("expected catalog order on all-zero scores, got %s %s",
			matches[0].CareerID, matches[1].CareerID)
	}
}

func TestRecommendation_MatchCareers_TopNTruncatesAfterRanking(t *testing.T) {
	uc := NewRecommendationUsecase(testCatalog(), nil, nil)

	matches, err := uc.MatchCareers(context.Background(), RecommendParams{
		Skills: []string{"Figma", "Communication"},
		TopN:   1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].CareerID != "ux_designer" {
		t.Fatalf("expected best match kept after truncation, got %s", matches[0].CareerID)
	}

	matches, err = uc.MatchCareers(context.Background(), RecommendParams{
		Skills: []string{"Figma"},
		TopN:   100,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("oversized top_n should clamp, got %d", len(matches))
	}
}

func TestRecommendation_MatchCareers_CacheRoundTrip(t *testing.T) {
	cache := newMockCache()
	uc := NewRecommendationUsecase(testCatalog(), cache, nil)

	params := RecommendParams{Skills: []string{"Python", "SQL"}, TopN: 2}

	first, err := uc.MatchCareers(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", cache.sets)
	}

	second, err := uc.MatchCareers(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit should not set again, got %d sets", cache.sets)
	}
	if len(second) != len(first) || second[0].CareerID != first[0].CareerID {
		t.Fatalf("cached result differs: %v vs %v", second, first)
	}
}

func TestRecommendation_MatchCareers_CacheKeyNormalizesInput(t *testing.T) {
	a := RecommendationsCacheKey(RecommendParams{Skills: []string{" Python ", "SQL"}, Interests: "  Data  Pipelines ", TopN: 5})
	b := RecommendationsCacheKey(RecommendParams{Skills: []string{"python", "sql"}, Interests: "data pipelines", TopN: 5})
	if a != b {
		t.Fatalf("expected normalized keys to match: %s vs %s", a, b)
	}

	c := RecommendationsCacheKey(RecommendParams{Skills: []string{"python", "sql"}, Interests: "data pipelines", TopN: 3})
	if a == c {
		t.Fatalf("top_n should change the key")
	}
}

func TestRecommendation_CareerDetails(t *testing.T) {
	uc := NewRecommendationUsecase(testCatalog(), nil, nil)

	career, err := uc.CareerDetails("ml_engineer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if career.Name != "ML Engineer" {
		t.Fatalf("unexpected career: %+v", career)
	}

	_, err = uc.CareerDetails("astronaut")
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

func TestRecommendation_ListCareers_FiltersByCategory(t *testing.T) {
	uc := NewRecommendationUsecase(testCatalog(), nil, nil)

	all := uc.ListCareers("")
	if len(all) != 3 {
		t.Fatalf("expected 3 careers, got %d", len(all))
	}

	design := uc.ListCareers("Design")
	if len(design) != 1 || design[0].ID != "ux_designer" {
		t.Fatalf("unexpected category filter result: %+v", design)
	}
}

func TestRecommendation_SimilarCareers_ExcludesSelf(t *testing.T) {
	uc := NewRecommendationUsecase(testCatalog(), nil, nil)

	similar, err := uc.SimilarCareers("data_engineer", 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(similar) != 2 {
		t.Fatalf("expected 2 similar careers, got %d", len(similar))
	}
	for _, s := range similar {
		if s.CareerID == "data_engineer" {
			t.Fatalf("self should be excluded")
		}
	}
	if similar[0].CareerID != "ml_engineer" {
		t.Fatalf("expected ml_engineer closest, got %s", similar[0].CareerID)
	}
	if similar[0].Similarity < similar[1].Similarity {
		t.Fatalf("similar careers not sorted descending")
	}

	_, err = uc.SimilarCareers("astronaut", 3)
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}
