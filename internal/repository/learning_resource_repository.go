package repository

import (
	"context"
	"strings"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type LearningResource struct {
	ID            uuid.UUID
	SkillName     string
	Name          string
	Type          string
	URL           string
	DurationWeeks float64
	Difficulty    string
	Source        string
	CreatedAt     time.Time
}

type LearningResourceUpsert struct {
	SkillName     string
	Name          string
	Type          string
	URL           string
	DurationWeeks float64
	Difficulty    string
	Source        string
}

type LearningResourceRepository interface {
	FindBySkill(ctx context.Context, skill string) ([]LearningResource, error)
	UpsertResources(ctx context.Context, items []LearningResourceUpsert) (int64, error)
}

type PostgresLearningResourceRepository struct {
	db database.DB
}

func NewPostgresLearningResourceRepository(db database.DB) *PostgresLearningResourceRepository {
	return &PostgresLearningResourceRepository{db: db}
}

func (r *PostgresLearningResourceRepository) FindBySkill(ctx context.Context, skill string) ([]LearningResource, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, skill_name, name, resource_type, url, duration_weeks, difficulty, source, created_at
		 FROM learning_resources
		 WHERE LOWER(skill_name) = LOWER($1)
		 ORDER BY created_at DESC, name ASC`,
		strings.TrimSpace(skill),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LearningResource, 0)
	for rows.Next() {
		var res LearningResource
		if err := rows.Scan(
			&res.ID,
			&res.SkillName,
			&res.Name,
			&res.Type,
			&res.URL,
			&res.DurationWeeks,
			&res.Difficulty,
			&res.Source,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresLearningResourceRepository) UpsertResources(ctx context.Context, items []LearningResourceUpsert) (int64, error) {
	var affected int64
	for _, it := range items {
		url := strings.TrimSpace(it.URL)
		if url == "" {
			continue
		}
		n, err := r.db.Exec(ctx,
			`INSERT INTO learning_resources (
				id, skill_name, name, resource_type, url, duration_weeks, difficulty, source, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			ON CONFLICT (url) DO UPDATE SET
				skill_name = EXCLUDED.skill_name,
				name = EXCLUDED.name,
				resource_type = EXCLUDED.resource_type,
				duration_weeks = EXCLUDED.duration_weeks,
				difficulty = EXCLUDED.difficulty,
				source = EXCLUDED.source`,
			uuid.New(),
			strings.TrimSpace(it.SkillName),
			strings.TrimSpace(it.Name),
			strings.TrimSpace(it.Type),
			url,
			it.DurationWeeks,
			strings.ToLower(strings.TrimSpace(it.Difficulty)),
			strings.TrimSpace(it.Source),
			time.Now().UTC(),
		)
		if err != nil {
			return affected, err
		}
		affected += n
	}
	return affected, nil
}
