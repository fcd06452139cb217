package simulation

import (
	"fmt"
	"math"

	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/readiness"
)

const (
	TypeSwitchCareer       = "Switch Career"
	TypeSkipCertifications = "Skip Certifications"
	TypeFocusProjects      = "Focus on Projects"
	TypePauseLearning      = "Pause Learning"
	TypeAddSkills          = "Add Skills"
)

const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskVeryHigh = "Very High"
)

const maxDecayPenalty = 10.0

type Baseline struct {
	UserSkills        []string
	Career            string
	Gap               gap.Analysis
	Score             readiness.Score
	LearningTimeWeeks float64
	RiskLevel         string
}

type Changes struct {
	ScoreChange         float64
	TimeChange          float64
	GapChange           float64
	DecayPenalty        float64
	NewMissingSkills    []string
	RemovedRequirements []string
	RemovedSkills       []string
	SkillsImproved      []string
	SkillsMovedToKnown  []string
}

type Result struct {
	Type               string
	Career             string
	FromCareer         string
	UserSkills         []string
	SkippedCerts       []string
	ProjectSkills      []string
	NewlyMastered      []string
	NewlyAdded         []string
	PauseDurationWeeks int
	Gap                gap.Analysis
	Score              readiness.Score
	LearningTimeWeeks  float64
	RiskLevel          string
	Changes            Changes
	Warning            string
	Benefit            string
}

type Simulator struct {
	meta map[string]gap.SkillMeta
}

func NewSimulator(meta map[string]gap.SkillMeta) *Simulator {
	return &Simulator{meta: meta}
}

func (s *Simulator) Baseline(userSkills []string, t gap.Target) Baseline {
	analysis := gap.Analyze(userSkills, t, s.meta)
	score := readiness.Calculate(analysis, nil)

	return Baseline{
		UserSkills:        cloneStrings(userSkills),
		Career:            t.Career,
		Gap:               analysis,
		Score:             score,
		LearningTimeWeeks: analysis.LearningWeeks,
		RiskLevel:         RiskLevel(score.Overall, analysis.GapPercent),
	}
}

func (s *Simulator) SwitchCareer(base Baseline, t gap.Target) Result {
	analysis := gap.Analyze(base.UserSkills, t, s.meta)
	score := readiness.Calculate(analysis, nil)

	return Result{
		Type:              TypeSwitchCareer,
		Career:            t.Career,
		FromCareer:        base.Career,
		UserSkills:        cloneStrings(base.UserSkills),
		Gap:               analysis,
		Score:             score,
		LearningTimeWeeks: analysis.LearningWeeks,
		RiskLevel:         RiskLevel(score.Overall, analysis.GapPercent),
		Changes: Changes{
			ScoreChange:         score.Overall - base.Score.Overall,
			TimeChange:          analysis.LearningWeeks - base.LearningTimeWeeks,
			GapChange:           analysis.GapPercent - base.Gap.GapPercent,
			NewMissingSkills:    subtract(analysis.Missing, base.Gap.Missing),
			RemovedRequirements: subtract(base.Gap.Missing, analysis.Missing),
		},
	}
}

func (s *Simulator) SkipCertifications(base Baseline, certs []string) Result {
	modified := base.Gap.Clone()

	skip := toSet(certs)
	kept := make([]string, 0, len(modified.Missing))
	for _, skill := range modified.Missing {
		if _, ok := skip[skill]; !ok {
			kept = append(kept, skill)
		}
	}
	removed := subtract(modified.Missing, kept)

	modified.Missing = kept
	modified.MissingCount = len(kept)
	modified.GapPercent = gapPercent(modified.MissingCount, modified.PartialCount, modified.TotalRequired)
	modified.OverlapPercent = 100 - modified.GapPercent
	modified.LearningWeeks = gap.EstimateLearningWeeks(modified.Missing, modified.Partial, s.meta)

	score := readiness.ApplyChanges(base.Score, readiness.Changes{
		Coverage:    10,
		Depth:       -5,
		Consistency: -3,
	})

	return Result{
		Type:              TypeSkipCertifications,
		Career:            base.Career,
		UserSkills:        cloneStrings(base.UserSkills),
		SkippedCerts:      cloneStrings(certs),
		Gap:               modified,
		Score:             score,
		LearningTimeWeeks: modified.LearningWeeks,
		RiskLevel:         RiskLevel(score.Overall, modified.GapPercent),
		Changes: Changes{
			ScoreChange:   score.ChangeFromBaseline,
			TimeChange:    modified.LearningWeeks - base.LearningTimeWeeks,
			GapChange:     modified.GapPercent - base.Gap.GapPercent,
			RemovedSkills: removed,
		},
		Warning: "Skipping certifications may reduce competitiveness in job market",
	}
}

func (s *Simulator) FocusProjects(base Baseline, projectSkills []string) Result {
	modified := base.Gap.Clone()

	mastered := make([]string, 0, len(projectSkills))
	for _, skill := range projectSkills {
		trimmed, ok := removeFirst(modified.Partial, skill)
		if !ok {
			continue
		}
		modified.Partial = trimmed
		modified.Known = append(modified.Known, skill)
		mastered = append(mastered, skill)
	}

	modified.KnownCount = len(modified.Known)
	modified.PartialCount = len(modified.Partial)
	modified.GapPercent = gapPercent(modified.MissingCount, modified.PartialCount, modified.TotalRequired)
	modified.LearningWeeks = base.LearningTimeWeeks * 0.75

	score := readiness.ApplyChanges(base.Score, readiness.Changes{
		Coverage:    float64(len(mastered)) * 3,
		Depth:       5,
		Consistency: 5,
	})

	return Result{
		Type:              TypeFocusProjects,
		Career:            base.Career,
		UserSkills:        concat(base.UserSkills, mastered),
		ProjectSkills:     cloneStrings(projectSkills),
		NewlyMastered:     mastered,
		Gap:               modified,
		Score:             score,
		LearningTimeWeeks: modified.LearningWeeks,
		RiskLevel:         RiskLevel(score.Overall, modified.GapPercent),
		Changes: Changes{
			ScoreChange:    score.ChangeFromBaseline,
			TimeChange:     modified.LearningWeeks - base.LearningTimeWeeks,
			GapChange:      modified.GapPercent - base.Gap.GapPercent,
			SkillsImproved: cloneStrings(mastered),
		},
		Benefit: "Project-based learning accelerates practical skill development",
	}
}

func (s *Simulator) PauseLearning(base Baseline, pauseWeeks int) Result {
	if pauseWeeks < 0 {
		pauseWeeks = 0
	}

	modified := base.Gap.Clone()
	modified.LearningWeeks = base.LearningTimeWeeks + float64(pauseWeeks)

	decay := math.Min(float64(pauseWeeks)*0.5, maxDecayPenalty)
	score := readiness.ApplyChanges(base.Score, readiness.Changes{
		Depth:       -decay * 0.6,
		Consistency: -decay * 0.4,
	})

	return Result{
		Type:               TypePauseLearning,
		Career:             base.Career,
		UserSkills:         cloneStrings(base.UserSkills),
		PauseDurationWeeks: pauseWeeks,
		Gap:                modified,
		Score:              score,
		LearningTimeWeeks:  modified.LearningWeeks,
		RiskLevel:          RiskLevel(score.Overall, modified.GapPercent),
		Changes: Changes{
			ScoreChange:  score.ChangeFromBaseline,
			TimeChange:   float64(pauseWeeks),
			GapChange:    0,
			DecayPenalty: decay,
		},
		Warning: fmt.Sprintf("Pausing for %d weeks may cause skill decay and delay career readiness", pauseWeeks),
	}
}

func (s *Simulator) AddSkills(base Baseline, newSkills []string, t gap.Target) Result {
	combined := concat(base.UserSkills, newSkills)

	analysis := gap.Analyze(combined, t, s.meta)
	score := readiness.Calculate(analysis, nil)

	knownSet := toSet(analysis.Known)
	moved := make([]string, 0, len(newSkills))
	for _, skill := range newSkills {
		if _, ok := knownSet[skill]; ok {
			moved = append(moved, skill)
		}
	}

	return Result{
		Type:              TypeAddSkills,
		Career:            base.Career,
		UserSkills:        combined,
		NewlyAdded:        cloneStrings(newSkills),
		Gap:               analysis,
		Score:             score,
		LearningTimeWeeks: analysis.LearningWeeks,
		RiskLevel:         RiskLevel(score.Overall, analysis.GapPercent),
		Changes: Changes{
			ScoreChange:        score.Overall - base.Score.Overall,
			TimeChange:         analysis.LearningWeeks - base.LearningTimeWeeks,
			GapChange:          analysis.GapPercent - base.Gap.GapPercent,
			SkillsMovedToKnown: moved,
		},
		Benefit: fmt.Sprintf("Adding %d skills improves readiness significantly", len(newSkills)),
	}
}

func RiskLevel(score, gapPct float64) string {
	switch {
	case score >= 80 && gapPct <= 20:
		return RiskLow
	case score >= 60 && gapPct <= 40:
		return RiskMedium
	case score >= 40 && gapPct <= 60:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

func gapPercent(missing, partial, total int) float64 {
	if total == 0 {
		return 0
	}
	return (float64(missing) + 0.5*float64(partial)) / float64(total) * 100
}

func subtract(from, exclude []string) []string {
	set := toSet(exclude)
	out := make([]string, 0, len(from))
	for _, s := range from {
		if _, ok := set[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func removeFirst(items []string, target string) ([]string, bool) {
	for i, s := range items {
		if s != target {
			continue
		}
		out := make([]string, 0, len(items)-1)
		out = append(out, items[:i]...)
		out = append(out, items[i+1:]...)
		return out, true
	}
	return items, false
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
