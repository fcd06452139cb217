package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	"career-compass/internal/fetcher"
	"career-compass/internal/repository"
)

func main() {
	skillsFlag := flag.String("skills", "", "comma separated skill names (default: full catalog)")
	sourceFlag := flag.String("source", "", "single source to run (default: configured sources)")
	workersFlag := flag.Int("workers", 0, "worker count override")
	limitFlag := flag.Int("limit", 0, "per-skill resource limit override")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	skills := splitList(*skillsFlag)
	if len(skills) == 0 {
		skills = c.Catalog.SkillNames()
	}

	sourceNames := cfg.Fetch.Sources
	if s := strings.TrimSpace(*sourceFlag); s != "" {
		sourceNames = []string{s}
	}
	sources := fetcher.SourcesFromNames(sourceNames, c.Logger)
	if len(sources) == 0 {
		log.Fatalf("no usable fetch sources in %v", sourceNames)
	}

	workers := cfg.Fetch.Workers
	if *workersFlag > 0 {
		workers = *workersFlag
	}
	limit := cfg.Fetch.Limit
	if *limitFlag > 0 {
		limit = *limitFlag
	}

	repo := repository.NewPostgresLearningResourceRepository(c.DB)
	notifier := fetcher.NewNotifier(cfg.Fetch.ServerURL, cfg.Fetch.InternalToken)
	runner := fetcher.NewRunner(repo, c.Cache, notifier, c.Logger, workers, limit)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	summaries, err := runner.Run(ctx, sources, skills)
	if err != nil {
		log.Fatalf("fetch failed: %v", err)
	}
	for _, s := range summaries {
		log.Printf("source=%s inserted=%d failed=%d skills=%d", s.Source, s.Inserted, s.Failed, len(s.Skills))
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
