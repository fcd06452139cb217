package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/plan"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var ErrNoTargetCareer = errors.New("no target career selected")

const (
	missingSkillPriority = 100
	partialSkillPriority = 50
	missingSkillHours    = 20
	partialSkillHours    = 10
	taskResourceLimit    = 3
)

type DailyPlanResult struct {
	CareerID   string
	CareerName string
	Tasks      []plan.Task
	Estimate   plan.Estimate
	Summary    plan.Summary
	StudyTips  []string
	Badges     []string
}

type PlanUsecase interface {
	DailyPlan(ctx context.Context, userID uuid.UUID) (DailyPlanResult, error)
}

type resourceLister interface {
	ResourcesForSkill(ctx context.Context, skill string) ([]ResourceItem, error)
}

type Plans struct {
	catalog   *catalog.Store
	profiles  user.ProfileRepository
	resources resourceLister
	now       func() time.Time
}

func NewPlanUsecase(store *catalog.Store, profiles user.ProfileRepository, resources resourceLister) *Plans {
	return &Plans{
		catalog:   store,
		profiles:  profiles,
		resources: resources,
		now:       time.Now,
	}
}

func (u *Plans) DailyPlan(ctx context.Context, userID uuid.UUID) (DailyPlanResult, error) {
	if userID == uuid.Nil {
		return DailyPlanResult{}, ErrInvalidInput
	}

	profile, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return DailyPlanResult{}, ErrProfileNotFound
		}
		return DailyPlanResult{}, ErrInternal
	}
	if profile.TargetCareerID == "" {
		return DailyPlanResult{}, ErrNoTargetCareer
	}

	career, ok := u.catalog.Career(profile.TargetCareerID)
	if !ok {
		return DailyPlanResult{}, ErrCareerNotFound
	}

	analysis := gap.Analyze(profile.Skills, target(career), u.catalog.MetaFor(career.RequiredSkills))

	gaps := make([]plan.GapTask, 0, len(analysis.Missing)+len(analysis.Partial))
	for _, skill := range analysis.Missing {
		gaps = append(gaps, plan.GapTask{
			Skill:       skill,
			Priority:    missingSkillPriority,
			HoursNeeded: missingSkillHours,
			Resources:   u.resourceNames(ctx, skill),
		})
	}
	for _, skill := range analysis.Partial {
		gaps = append(gaps, plan.GapTask{
			Skill:       skill,
			Priority:    partialSkillPriority,
			HoursNeeded: partialSkillHours,
			Resources:   u.resourceNames(ctx, skill),
		})
	}

	progress := make(map[string]float64, len(profile.Progress)+len(gaps))
	for skill, pct := range profile.Progress {
		progress[skill] = pct
	}
	for _, g := range gaps {
		if _, ok := progress[g.Skill]; !ok {
			progress[g.Skill] = 0
		}
	}

	now := u.now()
	days := 1
	if !profile.CreatedAt.IsZero() {
		if d := int(now.Sub(profile.CreatedAt).Hours() / 24); d > days {
			days = d
		}
	}

	return DailyPlanResult{
		CareerID:   career.ID,
		CareerName: career.Name,
		Tasks:      plan.DailyPlan(gaps, progress, profile.LearningPace, profile.DailyHours),
		Estimate:   plan.CompletionEstimate(gaps, profile.DailyHours, now),
		Summary:    plan.ProgressSummary(progress, gaps),
		StudyTips:  plan.StudyTips(profile.LearningStyle),
		Badges:     plan.Badges(progress, days),
	}, nil
}

func (u *Plans) resourceNames(ctx context.Context, skill string) []string {
	if u.resources == nil {
		return []string{}
	}
	items, err := u.resources.ResourcesForSkill(ctx, skill)
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, taskResourceLimit)
	for _, it := range items {
		if len(names) == taskResourceLimit {
			break
		}
		names = append(names, it.Name)
	}
	return names
}
