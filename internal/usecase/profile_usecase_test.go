package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/plan"

	"github.com/google/uuid"
)

func TestProfiles_SaveProfile_NormalizesInput(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, testCatalog())
	userID := uuid.New()

	saved, err := uc.SaveProfile(context.Background(), userID, ProfileInput{
		Skills:         []string{"python", "  sql  ", "python", ""},
		Interests:      "  data pipelines  ",
		TargetCareerID: "data_engineer",
		LearningStyle:  " Visual ",
		LearningPace:   "",
		DailyHours:     0,
		Progress:       map[string]float64{"Python": 150, "SQL": -5, "  ": 40},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantSkills := []string{"Python", "SQL"}
	if len(saved.Skills) != len(wantSkills) {
		t.Fatalf("expected skills %v, got %v", wantSkills, saved.Skills)
	}
	for i, s := range wantSkills {
		if saved.Skills[i] != s {
			t.Fatalf("expected skill %q at %d, got %q", s, i, saved.Skills[i])
		}
	}
	if saved.Interests != "data pipelines" {
		t.Fatalf("expected trimmed interests, got %q", saved.Interests)
	}
	if saved.LearningStyle != "visual" {
		t.Fatalf("expected lowercased style, got %q", saved.LearningStyle)
	}
	if saved.LearningPace != plan.PaceModerate {
		t.Fatalf("expected default pace %q, got %q", plan.PaceModerate, saved.LearningPace)
	}
	if saved.DailyHours != 2 {
		t.Fatalf("expected default daily hours 2, got %d", saved.DailyHours)
	}
	if len(saved.Progress) != 2 {
		t.Fatalf("expected 2 progress entries, got %v", saved.Progress)
	}
	if saved.Progress["Python"] != 100 {
		t.Fatalf("expected Python progress clamped to 100, got %.1f", saved.Progress["Python"])
	}
	if saved.Progress["SQL"] != 0 {
		t.Fatalf("expected SQL progress clamped to 0, got %.1f", saved.Progress["SQL"])
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestProfiles_SaveProfile_Validation(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileRepo(), testCatalog())
	userID := uuid.New()

	if _, err := uc.SaveProfile(context.Background(), uuid.Nil, ProfileInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil user, got %v", err)
	}
	if _, err := uc.SaveProfile(context.Background(), userID, ProfileInput{TargetCareerID: "astronaut"}); !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
	if _, err := uc.SaveProfile(context.Background(), userID, ProfileInput{LearningPace: "frantic"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown pace, got %v", err)
	}

	saved, err := uc.SaveProfile(context.Background(), userID, ProfileInput{LearningPace: " Intensive ", DailyHours: 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.LearningPace != plan.PaceIntensive {
		t.Fatalf("expected intensive pace, got %q", saved.LearningPace)
	}
	if saved.DailyHours != 24 {
		t.Fatalf("expected daily hours capped at 24, got %d", saved.DailyHours)
	}
	if saved.TargetCareerID != "" {
		t.Fatalf("expected empty target career to stay empty, got %q", saved.TargetCareerID)
	}
}

func TestProfiles_GetProfile(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, testCatalog())
	userID := uuid.New()

	if _, err := uc.GetProfile(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.GetProfile(context.Background(), userID); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	if _, err := uc.SaveProfile(context.Background(), userID, ProfileInput{Skills: []string{"Python"}, TargetCareerID: "ml_engineer"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := uc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TargetCareerID != "ml_engineer" {
		t.Fatalf("expected target career ml_engineer, got %q", got.TargetCareerID)
	}
	if len(got.Skills) != 1 || got.Skills[0] != "Python" {
		t.Fatalf("expected skills [Python], got %v", got.Skills)
	}
}

func TestProfiles_GetProfile_RepositoryFailure(t *testing.T) {
	repo := newMockProfileRepo()
	repo.err = errors.New("connection reset")
	uc := NewProfileUsecase(repo, testCatalog())

	if _, err := uc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
