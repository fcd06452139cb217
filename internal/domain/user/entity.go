package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	UserID         uuid.UUID
	Skills         []string
	Interests      string
	TargetCareerID string
	LearningStyle  string
	LearningPace   string
	DailyHours     int
	Progress       map[string]float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
