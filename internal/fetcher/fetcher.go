package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"

	"go.uber.org/zap"
)

var ErrAlreadyRunning = errors.New("fetch already running")

const fetchLockTTL = 10 * time.Minute

// Source pulls learning resources for one skill from an external site.
type Source interface {
	Name() string
	Fetch(ctx context.Context, skill string, limit int) ([]repository.LearningResourceUpsert, error)
}

type SourceSummary struct {
	Source   string
	Skills   []string
	Inserted int64
	Failed   int
}

type Runner struct {
	repo     repository.LearningResourceRepository
	cache    *cache.Redis
	notifier *Notifier
	logger   *zap.Logger
	workers  int
	limit    int
}

func NewRunner(repo repository.LearningResourceRepository, c *cache.Redis, notifier *Notifier, logger *zap.Logger, workers int, limit int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return &Runner{repo: repo, cache: c, notifier: notifier, logger: logger, workers: workers, limit: limit}
}

func (r *Runner) Run(ctx context.Context, sources []Source, skills []string) ([]SourceSummary, error) {
	if r == nil || r.repo == nil {
		return nil, fmt.Errorf("nil runner/repo")
	}

	cleaned := cleanSkills(skills)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("no skills to fetch")
	}

	summaries := make([]SourceSummary, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		sum, err := r.runSource(ctx, src, cleaned)
		if err != nil {
			if errors.Is(err, ErrAlreadyRunning) {
				r.logger.Warn("fetch already running, skipping", zap.String("source", src.Name()))
				continue
			}
			r.logger.Warn("fetch source failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

func (r *Runner) runSource(ctx context.Context, src Source, skills []string) (SourceSummary, error) {
	name := src.Name()

	if r.cache != nil && r.cache.Ping(ctx) == nil {
		lockKey := "fetch:lock:" + name
		acquired, err := r.cache.SetIfNotExists(ctx, lockKey, time.Now().UTC().Format(time.RFC3339), fetchLockTTL)
		if err == nil && !acquired {
			return SourceSummary{}, ErrAlreadyRunning
		}
		if err == nil && acquired {
			defer func() {
				_ = r.cache.Delete(context.Background(), lockKey)
			}()
		}
	}

	pool := NewWorkerPool(r.workers, r.workers*2)
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	var mu sync.Mutex
	var inserted int64

	for _, skill := range skills {
		skill := skill
		pool.Submit(func(ctx context.Context) error {
			items, err := src.Fetch(ctx, skill, r.limit)
			if err != nil {
				return fmt.Errorf("fetch %s/%s: %w", name, skill, err)
			}
			if len(items) == 0 {
				return nil
			}
			n, err := r.repo.UpsertResources(ctx, items)
			if err != nil {
				return fmt.Errorf("upsert %s/%s: %w", name, skill, err)
			}
			mu.Lock()
			inserted += n
			mu.Unlock()
			return nil
		})
	}

	pool.Close()

	failed := 0
	for res := range results {
		if res.Err != nil {
			failed++
			r.logger.Warn("fetch task failed", zap.String("source", name), zap.Error(res.Err))
		}
	}

	if r.cache != nil {
		if err := r.cache.InvalidateSkillResources(ctx, skills); err != nil {
			r.logger.Warn("resource cache invalidation failed", zap.String("source", name), zap.Error(err))
		}
	}

	if r.notifier != nil {
		if err := r.notifier.NotifyCompleted(ctx, name, skills, int(inserted)); err != nil {
			r.logger.Warn("fetch completion webhook failed", zap.String("source", name), zap.Error(err))
		}
	}

	r.logger.Info("fetch source finished",
		zap.String("source", name),
		zap.Int64("inserted", inserted),
		zap.Int("failed", failed),
		zap.Int("skills", len(skills)))

	return SourceSummary{Source: name, Skills: skills, Inserted: inserted, Failed: failed}, nil
}

// SourcesFromNames maps configured source names onto fetchers, skipping
// names it does not recognize.
func SourcesFromNames(names []string, logger *zap.Logger) []Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := make([]Source, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "devto":
			out = append(out, NewDevtoFetcher())
		case "freecodecamp":
			out = append(out, NewFreeCodeCampFetcher())
		case "":
		default:
			logger.Warn("unknown fetch source", zap.String("source", name))
		}
	}
	return out
}

func cleanSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
