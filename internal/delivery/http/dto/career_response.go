package dto

import (
	"career-compass/internal/catalog"
	"career-compass/internal/usecase"
)

type CareerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	Weights        []float64 `json:"weights"`
	AvgSalary      int       `json:"avg_salary"`
	GrowthRate     float64   `json:"growth_rate"`
}

type CareerMatchResponse struct {
	CareerID        string   `json:"career_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	MatchScore      float64  `json:"match_score"`
	SimilarityScore float64  `json:"similarity_score"`
	OverlapScore    float64  `json:"overlap_score"`
	KnownSkills     []string `json:"known_skills"`
	PartialSkills   []string `json:"partial_skills"`
	MissingSkills   []string `json:"missing_skills"`
	AvgSalary       int      `json:"avg_salary"`
	GrowthRate      float64  `json:"growth_rate"`
}

type SimilarCareerResponse struct {
	CareerID   string  `json:"career_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Similarity float64 `json:"similarity"`
}

func NewCareerResponse(c catalog.Career) CareerResponse {
	return CareerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Category:       c.Category,
		Description:    c.Description,
		RequiredSkills: c.RequiredSkills,
		Weights:        c.Weights,
		AvgSalary:      c.AvgSalary,
		GrowthRate:     c.GrowthRate,
	}
}

func NewCareerListResponse(careers []catalog.Career) []CareerResponse {
	out := make([]CareerResponse, 0, len(careers))
	for _, c := range careers {
		out = append(out, NewCareerResponse(c))
	}
	return out
}

func NewCareerMatchResponse(m usecase.CareerMatch) CareerMatchResponse {
	return CareerMatchResponse{
		CareerID:        m.CareerID,
		Name:            m.Name,
		Category:        m.Category,
		Description:     m.Description,
		RequiredSkills:  m.RequiredSkills,
		MatchScore:      m.MatchScore,
		SimilarityScore: m.SimilarityScore,
		OverlapScore:    m.OverlapScore,
		KnownSkills:     m.Known,
		PartialSkills:   m.Partial,
		MissingSkills:   m.Missing,
		AvgSalary:       m.AvgSalary,
		GrowthRate:      m.GrowthRate,
	}
}

func NewCareerMatchListResponse(matches []usecase.CareerMatch) []CareerMatchResponse {
	out := make([]CareerMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, NewCareerMatchResponse(m))
	}
	return out
}

func NewSimilarCareerListResponse(similar []usecase.SimilarCareer) []SimilarCareerResponse {
	out := make([]SimilarCareerResponse, 0, len(similar))
	for _, s := range similar {
		out = append(out, SimilarCareerResponse{
			CareerID:   s.CareerID,
			Name:       s.Name,
			Category:   s.Category,
			Similarity: s.Similarity,
		})
	}
	return out
}
