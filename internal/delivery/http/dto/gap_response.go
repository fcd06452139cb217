package dto

import (
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/plan"
	"career-compass/internal/domain/readiness"
	"career-compass/internal/usecase"
)

type SkillDetailResponse struct {
	Skill         string   `json:"skill"`
	Status        string   `json:"status"`
	Coverage      float64  `json:"coverage"`
	Importance    float64  `json:"importance"`
	WeightedScore float64  `json:"weighted_score"`
	LearningWeeks float64  `json:"learning_weeks"`
	Difficulty    string   `json:"difficulty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

type GapAnalysisResponse struct {
	Career         string                `json:"career"`
	TotalRequired  int                   `json:"total_required"`
	KnownCount     int                   `json:"known_count"`
	PartialCount   int                   `json:"partial_count"`
	MissingCount   int                   `json:"missing_count"`
	OverlapPercent float64               `json:"overlap_percent"`
	GapPercent     float64               `json:"gap_percent"`
	Known          []string              `json:"known"`
	Partial        []string              `json:"partial"`
	Missing        []string              `json:"missing"`
	Details        []SkillDetailResponse `json:"details"`
	LearningWeeks  float64               `json:"learning_weeks"`
	PrioritySkills []string              `json:"priority_skills"`
}

type ReadinessScoreResponse struct {
	Overall            float64 `json:"overall"`
	Coverage           float64 `json:"coverage"`
	Importance         float64 `json:"importance"`
	Depth              float64 `json:"depth"`
	Consistency        float64 `json:"consistency"`
	Grade              string  `json:"grade"`
	Interpretation     string  `json:"interpretation"`
	ChangeFromBaseline float64 `json:"change_from_baseline"`
}

type SuggestionResponse struct {
	Area         string   `json:"area"`
	CurrentScore float64  `json:"current_score"`
	Text         string   `json:"text"`
	Skills       []string `json:"skills,omitempty"`
	Improvement  string   `json:"improvement"`
}

type PhaseTaskResponse struct {
	Skill      string `json:"skill"`
	Type       string `json:"type"`
	Priority   int    `json:"priority"`
	Difficulty string `json:"difficulty"`
}

type PhaseResponse struct {
	Number        int                 `json:"number"`
	DurationWeeks int                 `json:"duration_weeks"`
	Tasks         []PhaseTaskResponse `json:"tasks"`
}

type GapReportResponse struct {
	CareerID     string                 `json:"career_id"`
	CareerName   string                 `json:"career_name"`
	Analysis     GapAnalysisResponse    `json:"analysis"`
	Readiness    ReadinessScoreResponse `json:"readiness"`
	Suggestions  []SuggestionResponse   `json:"suggestions"`
	RiskLevel    string                 `json:"risk_level"`
	LearningPath []SkillDetailResponse  `json:"learning_path"`
	Phases       []PhaseResponse        `json:"phases"`
	Timeline     string                 `json:"timeline"`
}

type RankedScoreResponse struct {
	Career         string  `json:"career"`
	Overall        float64 `json:"overall"`
	Grade          string  `json:"grade"`
	Rank           int     `json:"rank"`
	Recommendation string  `json:"recommendation"`
}

func NewSkillDetailResponse(d gap.SkillDetail) SkillDetailResponse {
	return SkillDetailResponse{
		Skill:         d.Skill,
		Status:        d.Status,
		Coverage:      d.Coverage,
		Importance:    d.Importance,
		WeightedScore: d.WeightedScore,
		LearningWeeks: d.LearningWeeks,
		Difficulty:    d.Difficulty,
		Prerequisites: d.Prerequisites,
	}
}

func NewGapAnalysisResponse(a gap.Analysis) GapAnalysisResponse {
	details := make([]SkillDetailResponse, 0, len(a.Details))
	for _, d := range a.Details {
		details = append(details, NewSkillDetailResponse(d))
	}

	return GapAnalysisResponse{
		Career:         a.Career,
		TotalRequired:  a.TotalRequired,
		KnownCount:     a.KnownCount,
		PartialCount:   a.PartialCount,
		MissingCount:   a.MissingCount,
		OverlapPercent: a.OverlapPercent,
		GapPercent:     a.GapPercent,
		Known:          a.Known,
		Partial:        a.Partial,
		Missing:        a.Missing,
		Details:        details,
		LearningWeeks:  a.LearningWeeks,
		PrioritySkills: a.Priority,
	}
}

func NewReadinessScoreResponse(s readiness.Score) ReadinessScoreResponse {
	return ReadinessScoreResponse{
		Overall:            s.Overall,
		Coverage:           s.Coverage,
		Importance:         s.Importance,
		Depth:              s.Depth,
		Consistency:        s.Consistency,
		Grade:              s.Grade,
		Interpretation:     s.Interpretation,
		ChangeFromBaseline: s.ChangeFromBaseline,
	}
}

func NewSuggestionListResponse(suggestions []readiness.Suggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, SuggestionResponse{
			Area:         s.Area,
			CurrentScore: s.CurrentScore,
			Text:         s.Text,
			Skills:       s.Skills,
			Improvement:  s.Improvement,
		})
	}
	return out
}

func NewPhaseListResponse(phases []plan.Phase) []PhaseResponse {
	out := make([]PhaseResponse, 0, len(phases))
	for _, p := range phases {
		tasks := make([]PhaseTaskResponse, 0, len(p.Tasks))
		for _, t := range p.Tasks {
			tasks = append(tasks, PhaseTaskResponse{
				Skill:      t.Skill,
				Type:       t.Type,
				Priority:   t.Priority,
				Difficulty: t.Difficulty,
			})
		}
		out = append(out, PhaseResponse{
			Number:        p.Number,
			DurationWeeks: p.DurationWeeks,
			Tasks:         tasks,
		})
	}
	return out
}

func NewGapReportResponse(r usecase.GapReport) GapReportResponse {
	path := make([]SkillDetailResponse, 0, len(r.LearningPath))
	for _, d := range r.LearningPath {
		path = append(path, NewSkillDetailResponse(d))
	}

	return GapReportResponse{
		CareerID:     r.CareerID,
		CareerName:   r.CareerName,
		Analysis:     NewGapAnalysisResponse(r.Analysis),
		Readiness:    NewReadinessScoreResponse(r.Score),
		Suggestions:  NewSuggestionListResponse(r.Suggestions),
		RiskLevel:    r.RiskLevel,
		LearningPath: path,
		Phases:       NewPhaseListResponse(r.Phases),
		Timeline:     r.Timeline,
	}
}

func NewRankedScoreListResponse(ranked []readiness.RankedScore) []RankedScoreResponse {
	out := make([]RankedScoreResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RankedScoreResponse{
			Career:         r.Career,
			Overall:        r.Overall,
			Grade:          r.Grade,
			Rank:           r.Rank,
			Recommendation: r.Recommendation,
		})
	}
	return out
}
