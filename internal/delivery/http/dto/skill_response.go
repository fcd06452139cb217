package dto

import (
	"career-compass/internal/catalog"
	"career-compass/internal/usecase"
)

type SkillResponse struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	LearningWeeks float64  `json:"learning_weeks"`
	Continuous    bool     `json:"continuous"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

type ResourceResponse struct {
	SkillName     string  `json:"skill_name"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	URL           string  `json:"url"`
	DurationWeeks float64 `json:"duration_weeks"`
	Difficulty    string  `json:"difficulty"`
	Source        string  `json:"source"`
}

type ExtractionResponse struct {
	Skills     []string            `json:"skills"`
	Categories map[string][]string `json:"categories"`
}

func NewSkillResponse(s catalog.Skill) SkillResponse {
	return SkillResponse{
		Name:          s.Name,
		Category:      s.Category,
		Difficulty:    s.Difficulty,
		LearningWeeks: s.LearningWeeks,
		Continuous:    s.Continuous,
		Prerequisites: s.Prerequisites,
	}
}

func NewSkillListResponse(skills []catalog.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, NewSkillResponse(s))
	}
	return out
}

func NewResourceListResponse(items []usecase.ResourceItem) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(items))
	for _, r := range items {
		out = append(out, ResourceResponse{
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

func NewExtractionResponse(res usecase.ExtractionResult) ExtractionResponse {
	skills := res.Skills
	if skills == nil {
		skills = []string{}
	}
	categories := res.Categories
	if categories == nil {
		categories = map[string][]string{}
	}
	return ExtractionResponse{Skills: skills, Categories: categories}
}
