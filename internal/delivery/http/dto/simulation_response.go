package dto

import (
	"career-compass/internal/domain/simulation"
	"career-compass/internal/usecase"
)

type BaselineResponse struct {
	UserSkills        []string               `json:"user_skills"`
	Career            string                 `json:"career"`
	Gap               GapAnalysisResponse    `json:"gap"`
	Readiness         ReadinessScoreResponse `json:"readiness"`
	LearningTimeWeeks float64                `json:"learning_time_weeks"`
	RiskLevel         string                 `json:"risk_level"`
}

type ScenarioChangesResponse struct {
	ScoreChange         float64  `json:"score_change"`
	TimeChange          float64  `json:"time_change"`
	GapChange           float64  `json:"gap_change"`
	DecayPenalty        float64  `json:"decay_penalty,omitempty"`
	NewMissingSkills    []string `json:"new_missing_skills,omitempty"`
	RemovedRequirements []string `json:"removed_requirements,omitempty"`
	RemovedSkills       []string `json:"removed_skills,omitempty"`
	SkillsImproved      []string `json:"skills_improved,omitempty"`
	SkillsMovedToKnown  []string `json:"skills_moved_to_known,omitempty"`
}

type ScenarioResultResponse struct {
	Type               string                  `json:"type"`
	Career             string                  `json:"career"`
	FromCareer         string                  `json:"from_career,omitempty"`
	UserSkills         []string                `json:"user_skills"`
	SkippedCerts       []string                `json:"skipped_certifications,omitempty"`
	ProjectSkills      []string                `json:"project_skills,omitempty"`
	NewlyMastered      []string                `json:"newly_mastered,omitempty"`
	NewlyAdded         []string                `json:"newly_added,omitempty"`
	PauseDurationWeeks int                     `json:"pause_duration_weeks,omitempty"`
	Gap                GapAnalysisResponse     `json:"gap"`
	Readiness          ReadinessScoreResponse  `json:"readiness"`
	LearningTimeWeeks  float64                 `json:"learning_time_weeks"`
	RiskLevel          string                  `json:"risk_level"`
	Changes            ScenarioChangesResponse `json:"changes"`
	Warning            string                  `json:"warning,omitempty"`
	Benefit            string                  `json:"benefit,omitempty"`
}

type SimulationSessionResponse struct {
	Baseline BaselineResponse         `json:"baseline"`
	Results  []ScenarioResultResponse `json:"results"`
}

type ScenarioComparisonResponse struct {
	Type           string  `json:"type"`
	Score          float64 `json:"score"`
	ScoreChange    float64 `json:"score_change"`
	TimeWeeks      float64 `json:"time_weeks"`
	TimeChange     float64 `json:"time_change"`
	RiskLevel      string  `json:"risk_level"`
	GapPercent     float64 `json:"gap_percent"`
	Rank           int     `json:"rank"`
	Recommendation string  `json:"recommendation"`
}

func NewBaselineResponse(b simulation.Baseline) BaselineResponse {
	return BaselineResponse{
		UserSkills:        b.UserSkills,
		Career:            b.Career,
		Gap:               NewGapAnalysisResponse(b.Gap),
		Readiness:         NewReadinessScoreResponse(b.Score),
		LearningTimeWeeks: b.LearningTimeWeeks,
		RiskLevel:         b.RiskLevel,
	}
}

func NewScenarioResultResponse(r simulation.Result) ScenarioResultResponse {
	return ScenarioResultResponse{
		Type:               r.Type,
		Career:             r.Career,
		FromCareer:         r.FromCareer,
		UserSkills:         r.UserSkills,
		SkippedCerts:       r.SkippedCerts,
		ProjectSkills:      r.ProjectSkills,
		NewlyMastered:      r.NewlyMastered,
		NewlyAdded:         r.NewlyAdded,
		PauseDurationWeeks: r.PauseDurationWeeks,
		Gap:                NewGapAnalysisResponse(r.Gap),
		Readiness:          NewReadinessScoreResponse(r.Score),
		LearningTimeWeeks:  r.LearningTimeWeeks,
		RiskLevel:          r.RiskLevel,
		Changes: ScenarioChangesResponse{
			ScoreChange:         r.Changes.ScoreChange,
			TimeChange:          r.Changes.TimeChange,
			GapChange:           r.Changes.GapChange,
			DecayPenalty:        r.Changes.DecayPenalty,
			NewMissingSkills:    r.Changes.NewMissingSkills,
			RemovedRequirements: r.Changes.RemovedRequirements,
			RemovedSkills:       r.Changes.RemovedSkills,
			SkillsImproved:      r.Changes.SkillsImproved,
			SkillsMovedToKnown:  r.Changes.SkillsMovedToKnown,
		},
		Warning: r.Warning,
		Benefit: r.Benefit,
	}
}

func NewSimulationSessionResponse(s usecase.SimulationSession) SimulationSessionResponse {
	results := make([]ScenarioResultResponse, 0, len(s.Results))
	for _, r := range s.Results {
		results = append(results, NewScenarioResultResponse(r))
	}
	return SimulationSessionResponse{
		Baseline: NewBaselineResponse(s.Baseline),
		Results:  results,
	}
}

func NewScenarioComparisonListResponse(entries []simulation.ComparisonEntry) []ScenarioComparisonResponse {
	out := make([]ScenarioComparisonResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ScenarioComparisonResponse{
			Type:           e.Type,
			Score:          e.Score,
			ScoreChange:    e.ScoreChange,
			TimeWeeks:      e.TimeWeeks,
			TimeChange:     e.TimeChange,
			RiskLevel:      e.RiskLevel,
			GapPercent:     e.GapPercent,
			Rank:           e.Rank,
			Recommendation: e.Recommendation,
		})
	}
	return out
}
