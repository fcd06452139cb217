package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/simulation"
)

func TestGapAnalysis_AnalyzeGap_BuildsFullReport(t *testing.T) {
	uc := NewGapAnalysisUsecase(testCatalog(), nil, nil)

	report, err := uc.AnalyzeGap(context.Background(), "data_engineer", []string{"Python"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if report.CareerID != "data_engineer" || report.CareerName != "Data Engineer" {
		t.Fatalf("unexpected career: %s %s", report.CareerID, report.CareerName)
	}
	if report.Analysis.KnownCount != 1 || report.Analysis.MissingCount != 1 {
		t.Fatalf("unexpected analysis counts: %+v", report.Analysis)
	}
	if report.Score.Coverage != 50 {
		t.Fatalf("expected coverage 50, got %f", report.Score.Coverage)
	}
	if len(report.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(report.Suggestions))
	}
	if report.Suggestions[0].Area != "Skill Coverage" || report.Suggestions[1].Area != "Skill Mastery" {
		t.Fatalf("unexpected suggestion areas: %s %s",
			report.Suggestions[0].Area, report.Suggestions[1].Area)
	}
	if report.RiskLevel != simulation.RiskHigh {
		t.Fatalf("expected high risk, got %s", report.RiskLevel)
	}
	if len(report.LearningPath) != 1 || report.LearningPath[0].Skill != "SQL" {
		t.Fatalf("unexpected learning path: %+v", report.LearningPath)
	}
	if len(report.Phases) != 1 || report.Phases[0].DurationWeeks != 4 {
		t.Fatalf("unexpected phases: %+v", report.Phases)
	}
	if report.Phases[0].Tasks[0].Skill != "SQL" || report.Phases[0].Tasks[0].Type != "Learn" {
		t.Fatalf("unexpected phase task: %+v", report.Phases[0].Tasks[0])
	}
	if report.Timeline != "4 weeks (1 month)" {
		t.Fatalf("unexpected timeline: %s", report.Timeline)
	}
}

func TestGapAnalysis_AnalyzeGap_UnknownCareer(t *testing.T) {
	uc := NewGapAnalysisUsecase(testCatalog(), nil, nil)

	_, err := uc.AnalyzeGap(context.Background(), "astronaut", []string{"Python"})
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

func TestGapAnalysis_AnalyzeGap_EmptySkills(t *testing.T) {
	uc := NewGapAnalysisUsecase(testCatalog(), nil, nil)

	report, err := uc.AnalyzeGap(context.Background(), "ux_designer", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Analysis.MissingCount != 2 || report.Analysis.GapPercent != 100 {
		t.Fatalf("expected everything missing: %+v", report.Analysis)
	}
	if report.RiskLevel != simulation.RiskVeryHigh {
		t.Fatalf("expected very high risk, got %s", report.RiskLevel)
	}
}

func TestGapAnalysis_AnalyzeGap_CacheRoundTrip(t *testing.T) {
	cache := newMockCache()
	uc := NewGapAnalysisUsecase(testCatalog(), cache, nil)

	first, err := uc.AnalyzeGap(context.Background(), "data_engineer", []string{"Python", "SQL"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", cache.sets)
	}

	second, err := uc.AnalyzeGap(context.Background(), "data_engineer", []string{" python ", "SQL"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("normalized input should hit cache, got %d sets", cache.sets)
	}
	if second.Score.Overall != first.Score.Overall {
		t.Fatalf("cached report differs: %f vs %f", second.Score.Overall, first.Score.Overall)
	}
}

func TestGapAnalysis_CompareCareers_RanksByReadiness(t *testing.T) {
	uc := NewGapAnalysisUsecase(testCatalog(), nil, nil)

	ranked, err := uc.CompareCareers(context.Background(),
		[]string{"Python", "SQL"},
		[]string{"ux_designer", "data_engineer"},
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranked))
	}
	if ranked[0].Career != "Data Engineer" || ranked[0].Rank != 1 {
		t.Fatalf("expected Data Engineer ranked first: %+v", ranked[0])
	}
	if ranked[0].Recommendation != "Top Match - Strongest readiness" {
		t.Fatalf("unexpected recommendation: %s", ranked[0].Recommendation)
	}
	if ranked[1].Career != "UX Designer" || ranked[1].Rank != 2 {
		t.Fatalf("expected UX Designer ranked second: %+v", ranked[1])
	}
}

func TestGapAnalysis_CompareCareers_Errors(t *testing.T) {
	uc := NewGapAnalysisUsecase(testCatalog(), nil, nil)

	_, err := uc.CompareCareers(context.Background(), []string{"Python"}, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = uc.CompareCareers(context.Background(), []string{"Python"}, []string{"astronaut"})
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}
