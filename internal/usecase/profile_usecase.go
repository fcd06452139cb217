package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/plan"
	"career-compass/internal/domain/skillext"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

const (
	defaultDailyHours = 2
	maxDailyHours     = 24
)

type ProfileInput struct {
	Skills         []string
	Interests      string
	TargetCareerID string
	LearningStyle  string
	LearningPace   string
	DailyHours     int
	Progress       map[string]float64
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error)
}

type Profiles struct {
	profiles user.ProfileRepository
	catalog  *catalog.Store
}

func NewProfileUsecase(profiles user.ProfileRepository, store *catalog.Store) *Profiles {
	return &Profiles{profiles: profiles, catalog: store}
}

func (u *Profiles) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrInvalidInput
	}
	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) SaveProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrInvalidInput
	}

	if in.TargetCareerID = strings.TrimSpace(in.TargetCareerID); in.TargetCareerID != "" {
		if _, ok := u.catalog.Career(in.TargetCareerID); !ok {
			return user.Profile{}, ErrCareerNotFound
		}
	}

	pace := strings.ToLower(strings.TrimSpace(in.LearningPace))
	switch pace {
	case plan.PaceSlow, plan.PaceModerate, plan.PaceIntensive:
	case "":
		pace = plan.PaceModerate
	default:
		return user.Profile{}, ErrInvalidInput
	}

	hours := in.DailyHours
	if hours <= 0 {
		hours = defaultDailyHours
	}
	if hours > maxDailyHours {
		hours = maxDailyHours
	}

	progress := make(map[string]float64, len(in.Progress))
	for skill, pct := range in.Progress {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		progress[skill] = pct
	}

	p := user.Profile{
		UserID:         userID,
		Skills:         skillext.ExtractFromList(in.Skills, u.catalog.SkillNames()),
		Interests:      strings.TrimSpace(in.Interests),
		TargetCareerID: in.TargetCareerID,
		LearningStyle:  strings.ToLower(strings.TrimSpace(in.LearningStyle)),
		LearningPace:   pace,
		DailyHours:     hours,
		Progress:       progress,
	}

	if err := u.profiles.SaveProfile(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}

	saved, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return saved, nil
}
