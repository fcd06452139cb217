package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/simulation"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNoBaseline      = errors.New("no baseline set")
	ErrUnknownScenario = errors.New("unknown scenario type")
)

const (
	ScenarioSwitchCareer       = "switch_career"
	ScenarioSkipCertifications = "skip_certifications"
	ScenarioFocusProjects      = "focus_projects"
	ScenarioPauseLearning      = "pause_learning"
	ScenarioAddSkills          = "add_skills"
)

type ScenarioParams struct {
	Type       string
	CareerID   string
	Skills     []string
	PauseWeeks int
}

type SimulationSession struct {
	Baseline simulation.Baseline
	Results  []simulation.Result
}

type SimulationUsecase interface {
	SetBaseline(ctx context.Context, userID uuid.UUID, careerID string, skills []string) (simulation.Baseline, error)
	RunScenario(ctx context.Context, userID uuid.UUID, params ScenarioParams) (simulation.Result, error)
	Session(userID uuid.UUID) (SimulationSession, error)
	CompareScenarios(userID uuid.UUID) ([]simulation.ComparisonEntry, error)
	Clear(userID uuid.UUID)
}

type simulationSession struct {
	baseline simulation.Baseline
	target   gap.Target
	results  []simulation.Result
}

type Simulation struct {
	catalog  *catalog.Store
	profiles user.ProfileRepository
	sim      *simulation.Simulator

	mu       sync.Mutex
	sessions map[uuid.UUID]*simulationSession
}

func NewSimulationUsecase(store *catalog.Store, profiles user.ProfileRepository) *Simulation {
	return &Simulation{
		catalog:  store,
		profiles: profiles,
		sim:      simulation.NewSimulator(store.AllMeta()),
		sessions: make(map[uuid.UUID]*simulationSession),
	}
}

func (u *Simulation) SetBaseline(ctx context.Context, userID uuid.UUID, careerID string, skills []string) (simulation.Baseline, error) {
	if userID == uuid.Nil {
		return simulation.Baseline{}, ErrInvalidInput
	}
	career, ok := u.catalog.Career(strings.TrimSpace(careerID))
	if !ok {
		return simulation.Baseline{}, ErrCareerNotFound
	}

	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
	}

	if len(cleaned) == 0 {
		if u.profiles == nil {
			return simulation.Baseline{}, ErrInvalidInput
		}
		p, err := u.profiles.GetProfile(ctx, userID)
		if err != nil {
			if errors.Is(err, user.ErrProfileNotFound) {
				return simulation.Baseline{}, ErrProfileNotFound
			}
			return simulation.Baseline{}, ErrInternal
		}
		cleaned = p.Skills
	}

	t := target(career)
	base := u.sim.Baseline(cleaned, t)

	u.mu.Lock()
	u.sessions[userID] = &simulationSession{baseline: base, target: t}
	u.mu.Unlock()

	return base, nil
}

func (u *Simulation) RunScenario(ctx context.Context, userID uuid.UUID, params ScenarioParams) (simulation.Result, error) {
	if userID == uuid.Nil {
		return simulation.Result{}, ErrInvalidInput
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok {
		return simulation.Result{}, ErrNoBaseline
	}

	var result simulation.Result
	switch strings.ToLower(strings.TrimSpace(params.Type)) {
	case ScenarioSwitchCareer:
		career, ok := u.catalog.Career(strings.TrimSpace(params.CareerID))
		if !ok {
			return simulation.Result{}, ErrCareerNotFound
		}
		result = u.sim.SwitchCareer(sess.baseline, target(career))
	case ScenarioSkipCertifications:
		result = u.sim.SkipCertifications(sess.baseline, params.Skills)
	case ScenarioFocusProjects:
		result = u.sim.FocusProjects(sess.baseline, params.Skills)
	case ScenarioPauseLearning:
		result = u.sim.PauseLearning(sess.baseline, params.PauseWeeks)
	case ScenarioAddSkills:
		result = u.sim.AddSkills(sess.baseline, params.Skills, sess.target)
	default:
		return simulation.Result{}, ErrUnknownScenario
	}

	sess.results = append(sess.results, result)
	return result, nil
}

func (u *Simulation) Session(userID uuid.UUID) (SimulationSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok {
		return SimulationSession{}, ErrNoBaseline
	}

	results := make([]simulation.Result, len(sess.results))
	copy(results, sess.results)
	return SimulationSession{Baseline: sess.baseline, Results: results}, nil
}

func (u *Simulation) CompareScenarios(userID uuid.UUID) ([]simulation.ComparisonEntry, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok {
		return nil, ErrNoBaseline
	}
	return simulation.Compare(sess.results), nil
}

func (u *Simulation) Clear(userID uuid.UUID) {
	u.mu.Lock()
	delete(u.sessions, userID)
	u.mu.Unlock()
}
