package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	db *sql.DB

	stmtGet  *sql.Stmt
	stmtSave *sql.Stmt
}

func NewProfileRepository(db *sql.DB) (*ProfileRepository, error) {
	r := &ProfileRepository{db: db}

	var err error
	r.stmtGet, err = db.PrepareContext(
		context.Background(),
		`SELECT user_id, skills, interests, target_career_id, learning_style, learning_pace, daily_hours, progress, created_at, updated_at
		 FROM user_profiles WHERE user_id = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtSave, err = db.PrepareContext(
		context.Background(),
		`INSERT INTO user_profiles (user_id, skills, interests, target_career_id, learning_style, learning_pace, daily_hours, progress)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			target_career_id = EXCLUDED.target_career_id,
			learning_style = EXCLUDED.learning_style,
			learning_pace = EXCLUDED.learning_pace,
			daily_hours = EXCLUDED.daily_hours,
			progress = EXCLUDED.progress,
			updated_at = NOW()`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *ProfileRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtGet)
	closeStmt(r.stmtSave)

	return firstErr
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	var (
		p           user.Profile
		skillsRaw   []byte
		progressRaw []byte
	)

	row := r.stmtGet.QueryRowContext(ctx, userID)
	err := row.Scan(
		&p.UserID,
		&skillsRaw,
		&p.Interests,
		&p.TargetCareerID,
		&p.LearningStyle,
		&p.LearningPace,
		&p.DailyHours,
		&progressRaw,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}

	if len(skillsRaw) > 0 {
		if err := json.Unmarshal(skillsRaw, &p.Skills); err != nil {
			return user.Profile{}, err
		}
	}
	if len(progressRaw) > 0 {
		if err := json.Unmarshal(progressRaw, &p.Progress); err != nil {
			return user.Profile{}, err
		}
	}
	return p, nil
}

func (r *ProfileRepository) SaveProfile(ctx context.Context, p user.Profile) error {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	progress := p.Progress
	if progress == nil {
		progress = map[string]float64{}
	}

	skillsRaw, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	progressRaw, err := json.Marshal(progress)
	if err != nil {
		return err
	}

	_, err = r.stmtSave.ExecContext(ctx,
		p.UserID,
		skillsRaw,
		p.Interests,
		p.TargetCareerID,
		p.LearningStyle,
		p.LearningPace,
		p.DailyHours,
		progressRaw,
	)
	return err
}
