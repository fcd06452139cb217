package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type LearningResourcesSeeder struct{}

func (LearningResourcesSeeder) Name() string { return "learning_resources" }

func (LearningResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "learning_resources",
		"id", "skill_name", "name", "resource_type", "url", "duration_weeks", "difficulty", "source", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Skill      string
		Name       string
		Type       string
		URL        string
		Weeks      float64
		Difficulty string
	}{
		{Skill: "Python", Name: "Python Official Tutorial", Type: "course", URL: "https://docs.python.org/3/tutorial/", Weeks: 4, Difficulty: "beginner"},
		{Skill: "Python", Name: "Automate the Boring Stuff", Type: "book", URL: "https://automatetheboringstuff.com/", Weeks: 6, Difficulty: "beginner"},
		{Skill: "SQL", Name: "SQLBolt Interactive Lessons", Type: "course", URL: "https://sqlbolt.com/", Weeks: 2, Difficulty: "beginner"},
		{Skill: "SQL", Name: "Mode SQL Tutorial", Type: "course", URL: "https://mode.com/sql-tutorial/", Weeks: 3, Difficulty: "intermediate"},
		{Skill: "JavaScript", Name: "The Modern JavaScript Tutorial", Type: "course", URL: "https://javascript.info/", Weeks: 6, Difficulty: "beginner"},
		{Skill: "Machine Learning", Name: "Machine Learning Crash Course", Type: "course", URL: "https://developers.google.com/machine-learning/crash-course", Weeks: 8, Difficulty: "intermediate"},
		{Skill: "Statistics", Name: "Khan Academy Statistics", Type: "course", URL: "https://www.khanacademy.org/math/statistics-probability", Weeks: 6, Difficulty: "beginner"},
		{Skill: "Docker", Name: "Docker Getting Started Guide", Type: "course", URL: "https://docs.docker.com/get-started/", Weeks: 2, Difficulty: "beginner"},
		{Skill: "Kubernetes", Name: "Kubernetes Basics", Type: "course", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/", Weeks: 3, Difficulty: "intermediate"},
		{Skill: "Git", Name: "Pro Git Book", Type: "book", URL: "https://git-scm.com/book/en/v2", Weeks: 3, Difficulty: "beginner"},
	}

	for _, it := range items {
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO learning_resources (id, skill_name, name, resource_type, url, duration_weeks, difficulty, source)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, 'seed')
			 ON CONFLICT (url) DO NOTHING`,
			it.Skill,
			it.Name,
			it.Type,
			it.URL,
			it.Weeks,
			it.Difficulty,
		)
		if err != nil {
			return err
		}
		_ = affected
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
