package gap

import (
	"sort"

	"career-compass/internal/domain/matching"
)

const (
	StatusKnown   = "known"
	StatusPartial = "partial"
	StatusMissing = "missing"
)

const (
	defaultLearningWeeks = 4
	defaultDifficulty    = "intermediate"
	defaultImportance    = 0.5
	maxPrioritySkills    = 5
)

type Target struct {
	Career   string
	Required []string
	Weights  []float64
}

type SkillMeta struct {
	LearningWeeks float64
	Continuous    bool
	Difficulty    string
	Prerequisites []string
}

type SkillDetail struct {
	Skill         string
	Status        string
	Coverage      float64
	Importance    float64
	WeightedScore float64
	LearningWeeks float64
	Difficulty    string
	Prerequisites []string
}

type Analysis struct {
	Career         string
	TotalRequired  int
	KnownCount     int
	PartialCount   int
	MissingCount   int
	OverlapPercent float64
	GapPercent     float64
	Known          []string
	Partial        []string
	Missing        []string
	Details        []SkillDetail
	LearningWeeks  float64
	Priority       []string
}

func Analyze(userSkills []string, t Target, meta map[string]SkillMeta) Analysis {
	overlap := matching.Calculate(userSkills, t.Required)

	weights := make(map[string]float64, len(t.Required))
	for i, skill := range t.Required {
		if i < len(t.Weights) {
			weights[skill] = t.Weights[i]
		} else {
			weights[skill] = defaultImportance
		}
	}

	knownSet := toSet(overlap.Known)
	partialSet := toSet(overlap.Partial)

	details := make([]SkillDetail, 0, len(t.Required))
	for _, skill := range t.Required {
		status := StatusMissing
		coverage := 0.0
		if _, ok := knownSet[skill]; ok {
			status = StatusKnown
			coverage = 1.0
		} else if _, ok := partialSet[skill]; ok {
			status = StatusPartial
			coverage = 0.5
		}

		weight := weights[skill]
		info := resolveMeta(meta, skill)
		details = append(details, SkillDetail{
			Skill:         skill,
			Status:        status,
			Coverage:      coverage,
			Importance:    weight,
			WeightedScore: coverage * weight,
			LearningWeeks: info.LearningWeeks,
			Difficulty:    info.Difficulty,
			Prerequisites: info.Prerequisites,
		})
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Importance > details[j].Importance
	})

	total := len(t.Required)
	gapPct := 0.0
	if total > 0 {
		gapPct = (float64(len(overlap.Missing)) + 0.5*float64(len(overlap.Partial))) / float64(total) * 100
	}

	return Analysis{
		Career:         t.Career,
		TotalRequired:  total,
		KnownCount:     len(overlap.Known),
		PartialCount:   len(overlap.Partial),
		MissingCount:   len(overlap.Missing),
		OverlapPercent: overlap.Score * 100,
		GapPercent:     gapPct,
		Known:          overlap.Known,
		Partial:        overlap.Partial,
		Missing:        overlap.Missing,
		Details:        details,
		LearningWeeks:  EstimateLearningWeeks(overlap.Missing, overlap.Partial, meta),
		Priority:       prioritySkills(details),
	}
}

func EstimateLearningWeeks(missing, partial []string, meta map[string]SkillMeta) float64 {
	var weeks float64
	for _, skill := range missing {
		weeks += resolveMeta(meta, skill).LearningWeeks
	}
	for _, skill := range partial {
		weeks += resolveMeta(meta, skill).LearningWeeks * 0.5
	}
	return weeks
}

func LearningPath(details []SkillDetail) []SkillDetail {
	learned := make(map[string]struct{}, len(details))
	toLearn := make([]SkillDetail, 0, len(details))
	for _, d := range details {
		if d.Status == StatusKnown {
			learned[d.Skill] = struct{}{}
			continue
		}
		toLearn = append(toLearn, d.Clone())
	}

	sort.SliceStable(toLearn, func(i, j int) bool {
		if toLearn[i].Importance != toLearn[j].Importance {
			return toLearn[i].Importance > toLearn[j].Importance
		}
		return toLearn[i].Difficulty < toLearn[j].Difficulty
	})

	path := make([]SkillDetail, 0, len(toLearn))
	for len(toLearn) > 0 {
		next := -1
		for i, d := range toLearn {
			if prereqsMet(d.Prerequisites, learned) {
				next = i
				break
			}
		}
		if next < 0 {
			next = 0
		}

		d := toLearn[next]
		path = append(path, d)
		learned[d.Skill] = struct{}{}
		toLearn = append(toLearn[:next], toLearn[next+1:]...)
	}
	return path
}

func (d SkillDetail) Clone() SkillDetail {
	out := d
	out.Prerequisites = cloneStrings(d.Prerequisites)
	return out
}

func (a Analysis) Clone() Analysis {
	out := a
	out.Known = cloneStrings(a.Known)
	out.Partial = cloneStrings(a.Partial)
	out.Missing = cloneStrings(a.Missing)
	out.Priority = cloneStrings(a.Priority)
	out.Details = make([]SkillDetail, 0, len(a.Details))
	for _, d := range a.Details {
		out.Details = append(out.Details, d.Clone())
	}
	return out
}

func prioritySkills(details []SkillDetail) []string {
	status := make(map[string]string, len(details))
	for _, d := range details {
		status[d.Skill] = d.Status
	}

	priority := make([]string, 0, maxPrioritySkills)
	for _, d := range details {
		if d.Status != StatusMissing || d.Importance < 0.7 {
			continue
		}
		met := true
		for _, p := range d.Prerequisites {
			if status[p] != StatusKnown {
				met = false
				break
			}
		}
		if met {
			priority = append(priority, d.Skill)
		}
	}
	if len(priority) > maxPrioritySkills {
		priority = priority[:maxPrioritySkills]
	}
	return priority
}

func resolveMeta(meta map[string]SkillMeta, skill string) SkillMeta {
	info, ok := meta[skill]
	if !ok {
		return SkillMeta{LearningWeeks: defaultLearningWeeks, Difficulty: defaultDifficulty}
	}
	if info.Continuous || info.LearningWeeks <= 0 {
		info.LearningWeeks = defaultLearningWeeks
	}
	if info.Difficulty == "" {
		info.Difficulty = defaultDifficulty
	}
	info.Prerequisites = cloneStrings(info.Prerequisites)
	return info
}

func prereqsMet(prereqs []string, learned map[string]struct{}) bool {
	for _, p := range prereqs {
		if _, ok := learned[p]; !ok {
			return false
		}
	}
	return true
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
