package readiness

import (
	"fmt"
	"math"
	"sort"

	"career-compass/internal/domain/gap"
)

const (
	weightCoverage    = 0.5
	weightImportance  = 0.25
	weightDepth       = 0.15
	weightConsistency = 0.1
)

const (
	ComponentCoverage    = "skill_coverage"
	ComponentImportance  = "skill_importance"
	ComponentDepth       = "skill_depth"
	ComponentConsistency = "learning_consistency"
)

type Score struct {
	Overall            float64
	Coverage           float64
	Importance         float64
	Depth              float64
	Consistency        float64
	Grade              string
	Interpretation     string
	ChangeFromBaseline float64
}

type Changes struct {
	Coverage    float64
	Depth       float64
	Consistency float64
}

type Suggestion struct {
	Area         string
	CurrentScore float64
	Text         string
	Skills       []string
	Improvement  string
}

type RankedScore struct {
	Career         string
	Overall        float64
	Grade          string
	Rank           int
	Recommendation string
}

func Calculate(a gap.Analysis, consistency *float64) Score {
	coverage := 0.0
	depth := 0.0
	if a.TotalRequired > 0 {
		coverage = (float64(a.KnownCount) + 0.5*float64(a.PartialCount)) / float64(a.TotalRequired) * 100
		depth = float64(a.KnownCount) / float64(a.TotalRequired) * 100
	}

	var weightedSum, weightTotal float64
	for _, d := range a.Details {
		weightedSum += d.Coverage * d.Importance
		weightTotal += d.Importance
	}
	importance := 0.0
	if weightTotal > 0 {
		importance = weightedSum / weightTotal * 100
	}

	cons := math.Min(coverage*0.8+20, 100)
	if consistency != nil {
		cons = *consistency
	}

	overall := coverage*weightCoverage + importance*weightImportance + depth*weightDepth + cons*weightConsistency

	return Score{
		Overall:        round1(overall),
		Coverage:       round1(coverage),
		Importance:     round1(importance),
		Depth:          round1(depth),
		Consistency:    round1(cons),
		Grade:          grade(overall),
		Interpretation: interpret(overall),
	}
}

func ApplyChanges(s Score, c Changes) Score {
	out := s
	out.Coverage = clamp(s.Coverage+c.Coverage, 0, 100)
	out.Depth = clamp(s.Depth+c.Depth, 0, 100)
	out.Consistency = clamp(s.Consistency+c.Consistency, 0, 100)

	overall := out.Coverage*weightCoverage + out.Importance*weightImportance + out.Depth*weightDepth + out.Consistency*weightConsistency
	out.Overall = round1(overall)
	out.Grade = grade(overall)
	out.Interpretation = interpret(overall)
	out.ChangeFromBaseline = round1(overall - s.Overall)
	return out
}

func Suggestions(s Score, a gap.Analysis) []Suggestion {
	type component struct {
		key   string
		value float64
	}
	components := []component{
		{ComponentCoverage, s.Coverage},
		{ComponentImportance, s.Importance},
		{ComponentDepth, s.Depth},
		{ComponentConsistency, s.Consistency},
	}
	sort.SliceStable(components, func(i, j int) bool {
		return components[i].value < components[j].value
	})

	out := make([]Suggestion, 0, 2)
	for _, c := range components[:2] {
		switch c.key {
		case ComponentCoverage:
			out = append(out, Suggestion{
				Area:         "Skill Coverage",
				CurrentScore: c.value,
				Text:         fmt.Sprintf("Focus on learning %d missing skills", len(a.Missing)),
				Skills:       firstN(a.Priority, 3),
				Improvement:  "+15-25 points",
			})
		case ComponentImportance:
			critical := make([]string, 0, 3)
			count := 0
			for _, d := range a.Details {
				if d.Status != gap.StatusMissing || d.Importance < 0.7 {
					continue
				}
				count++
				if len(critical) < 3 {
					critical = append(critical, d.Skill)
				}
			}
			out = append(out, Suggestion{
				Area:         "Critical Skills",
				CurrentScore: c.value,
				Text:         fmt.Sprintf("Prioritize %d high-importance skills", count),
				Skills:       critical,
				Improvement:  "+20-30 points",
			})
		case ComponentDepth:
			out = append(out, Suggestion{
				Area:         "Skill Mastery",
				CurrentScore: c.value,
				Text:         fmt.Sprintf("Deepen knowledge in %d partial skills", len(a.Partial)),
				Skills:       firstN(a.Partial, 3),
				Improvement:  "+10-15 points",
			})
		case ComponentConsistency:
			out = append(out, Suggestion{
				Area:         "Learning Consistency",
				CurrentScore: c.value,
				Text:         "Maintain regular learning schedule and track progress",
				Skills:       []string{},
				Improvement:  "+5-10 points",
			})
		}
	}
	return out
}

func Rank(entries []RankedScore) []RankedScore {
	out := make([]RankedScore, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Overall > out[j].Overall
	})

	for i := range out {
		out[i].Rank = i + 1
		switch {
		case i == 0:
			out[i].Recommendation = "Top Match - Strongest readiness"
		case out[i].Overall >= 70:
			out[i].Recommendation = "Strong Alternative"
		case out[i].Overall >= 50:
			out[i].Recommendation = "Viable with Learning"
		default:
			out[i].Recommendation = "Long-term Goal"
		}
	}
	return out
}

func grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func interpret(score float64) string {
	switch {
	case score >= 85:
		return "Excellent! You're highly prepared for this career path."
	case score >= 70:
		return "Good progress! Focus on remaining gaps to strengthen readiness."
	case score >= 55:
		return "Moderate readiness. Consistent learning will improve your position."
	case score >= 40:
		return "Early stage. Significant learning needed, but achievable with focus."
	default:
		return "Beginning journey. Consider building foundational skills first."
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
