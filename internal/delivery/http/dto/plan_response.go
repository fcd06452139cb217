package dto

import (
	"career-compass/internal/usecase"
)

type PlanTaskResponse struct {
	Skill        string   `json:"skill"`
	Activity     string   `json:"activity"`
	ActivityType string   `json:"activity_type"`
	Duration     string   `json:"duration"`
	Priority     int      `json:"priority"`
	Resources    []string `json:"resources"`
	Milestone    string   `json:"milestone"`
}

type PlanEstimateResponse struct {
	TotalHours     float64 `json:"total_hours"`
	DaysNeeded     int     `json:"days_needed"`
	WeeksNeeded    int     `json:"weeks_needed"`
	CompletionDate string  `json:"completion_date"`
	HoursPerDay    int     `json:"hours_per_day"`
}

type PlanSummaryResponse struct {
	TotalSkills     int     `json:"total_skills"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"in_progress"`
	NotStarted      int     `json:"not_started"`
	AverageProgress float64 `json:"average_progress"`
}

type DailyPlanResponse struct {
	CareerID   string               `json:"career_id"`
	CareerName string               `json:"career_name"`
	Tasks      []PlanTaskResponse   `json:"tasks"`
	Estimate   PlanEstimateResponse `json:"estimate"`
	Summary    PlanSummaryResponse  `json:"summary"`
	StudyTips  []string             `json:"study_tips"`
	Badges     []string             `json:"badges"`
}

func NewDailyPlanResponse(r usecase.DailyPlanResult) DailyPlanResponse {
	tasks := make([]PlanTaskResponse, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		resources := t.Resources
		if resources == nil {
			resources = []string{}
		}
		tasks = append(tasks, PlanTaskResponse{
			Skill:        t.Skill,
			Activity:     t.Activity,
			ActivityType: t.ActivityType,
			Duration:     t.Duration,
			Priority:     t.Priority,
			Resources:    resources,
			Milestone:    t.Milestone,
		})
	}

	badges := r.Badges
	if badges == nil {
		badges = []string{}
	}

	return DailyPlanResponse{
		CareerID:   r.CareerID,
		CareerName: r.CareerName,
		Tasks:      tasks,
		Estimate: PlanEstimateResponse{
			TotalHours:     r.Estimate.TotalHours,
			DaysNeeded:     r.Estimate.DaysNeeded,
			WeeksNeeded:    r.Estimate.WeeksNeeded,
			CompletionDate: r.Estimate.CompletionDate,
			HoursPerDay:    r.Estimate.HoursPerDay,
		},
		Summary: PlanSummaryResponse{
			TotalSkills:     r.Summary.TotalSkills,
			Completed:       r.Summary.Completed,
			InProgress:      r.Summary.InProgress,
			NotStarted:      r.Summary.NotStarted,
			AverageProgress: r.Summary.AverageProgress,
		},
		StudyTips: r.StudyTips,
		Badges:    badges,
	}
}
