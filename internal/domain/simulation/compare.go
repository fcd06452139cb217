package simulation

import "sort"

type ComparisonEntry struct {
	Type           string
	Score          float64
	ScoreChange    float64
	TimeWeeks      float64
	TimeChange     float64
	RiskLevel      string
	GapPercent     float64
	Rank           int
	Recommendation string
}

func Compare(results []Result) []ComparisonEntry {
	entries := make([]ComparisonEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, ComparisonEntry{
			Type:        r.Type,
			Score:       r.Score.Overall,
			ScoreChange: r.Changes.ScoreChange,
			TimeWeeks:   r.LearningTimeWeeks,
			TimeChange:  r.Changes.TimeChange,
			RiskLevel:   r.RiskLevel,
			GapPercent:  r.Gap.GapPercent,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Rank = i + 1
		switch {
		case i == 0:
			entries[i].Recommendation = "Best Overall Outcome"
		case entries[i].TimeChange < 0:
			entries[i].Recommendation = "Fastest Path"
		case entries[i].ScoreChange > 5:
			entries[i].Recommendation = "Highest Score Gain"
		default:
			entries[i].Recommendation = "Consider Trade-offs"
		}
	}
	return entries
}
