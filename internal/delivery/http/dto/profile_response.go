package dto

import (
	"time"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserID         uuid.UUID          `json:"user_id"`
	Skills         []string           `json:"skills"`
	Interests      string             `json:"interests"`
	TargetCareerID string             `json:"target_career_id"`
	LearningStyle  string             `json:"learning_style"`
	LearningPace   string             `json:"learning_pace"`
	DailyHours     int                `json:"daily_hours"`
	Progress       map[string]float64 `json:"progress"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	progress := p.Progress
	if progress == nil {
		progress = map[string]float64{}
	}

	return ProfileResponse{
		UserID:         p.UserID,
		Skills:         skills,
		Interests:      p.Interests,
		TargetCareerID: p.TargetCareerID,
		LearningStyle:  p.LearningStyle,
		LearningPace:   p.LearningPace,
		DailyHours:     p.DailyHours,
		Progress:       progress,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
