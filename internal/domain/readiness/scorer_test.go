package readiness

import (
	"testing"

	"career-compass/internal/domain/gap"
)

func analysisFixture() gap.Analysis {
	return gap.Analyze(
		[]string{"Python", "SQL"},
		gap.Target{
			Career:   "Data Engineer",
			Required: []string{"Python", "SQL", "AWS", "Docker"},
			Weights:  []float64{0.9, 0.8, 0.7, 0.6},
		},
		map[string]gap.SkillMeta{
			"Python": {LearningWeeks: 8, Difficulty: "intermediate"},
			"SQL":    {LearningWeeks: 4, Difficulty: "beginner"},
			"AWS":    {LearningWeeks: 6, Difficulty: "intermediate"},
			"Docker": {LearningWeeks: 3, Difficulty: "beginner"},
		},
	)
}

func TestCalculateComponents(t *testing.T) {
	s := Calculate(analysisFixture(), nil)

	if s.Coverage != 50.0 {
		t.Fatalf("coverage = %v, want 50.0", s.Coverage)
	}
	if s.Depth != 50.0 {
		t.Fatalf("depth = %v, want 50.0", s.Depth)
	}
	if s.Consistency != 60.0 {
		t.Fatalf("consistency = %v, want 60.0", s.Consistency)
	}
	if s.Importance != 56.7 {
		t.Fatalf("importance = %v, want 56.7", s.Importance)
	}
	if s.Overall != 52.7 {
		t.Fatalf("overall = %v, want 52.7", s.Overall)
	}
	if s.Grade != "F" {
		t.Fatalf("grade = %q, want F", s.Grade)
	}
}

func TestCalculateDepthIgnoresPartial(t *testing.T) {
	a := gap.Analyze(
		[]string{"SQL"},
		gap.Target{
			Career:   "Analyst",
			Required: []string{"PostgreSQL", "MySQL"},
			Weights:  []float64{0.8, 0.8},
		},
		nil,
	)
	if a.PartialCount != 2 {
		t.Fatalf("partial count = %d, want 2", a.PartialCount)
	}

	s := Calculate(a, nil)
	if s.Depth != 0.0 {
		t.Fatalf("depth = %v, want 0.0 when all matches are partial", s.Depth)
	}
	if s.Coverage != 50.0 {
		t.Fatalf("coverage = %v, want 50.0", s.Coverage)
	}
}

func TestCalculateConsistencyOverride(t *testing.T) {
	provided := 95.0
	s := Calculate(analysisFixture(), &provided)
	if s.Consistency != 95.0 {
		t.Fatalf("consistency = %v, want 95.0", s.Consistency)
	}

	derived := Calculate(analysisFixture(), nil)
	if s.Overall <= derived.Overall {
		t.Fatalf("overall with higher consistency = %v, want > %v", s.Overall, derived.Overall)
	}
}

func TestCalculateConsistencyCapped(t *testing.T) {
	a := gap.Analyze(
		[]string{"Go", "SQL"},
		gap.Target{Career: "Backend", Required: []string{"Go", "SQL"}, Weights: []float64{0.9, 0.8}},
		nil,
	)
	s := Calculate(a, nil)
	if s.Consistency != 100.0 {
		t.Fatalf("consistency = %v, want capped at 100.0", s.Consistency)
	}
	if s.Overall != 100.0 {
		t.Fatalf("overall = %v, want 100.0 for full coverage", s.Overall)
	}
	if s.Grade != "A" {
		t.Fatalf("grade = %q, want A", s.Grade)
	}
}

func TestCalculateEmptyAnalysis(t *testing.T) {
	s := Calculate(gap.Analyze(nil, gap.Target{Career: "Empty"}, nil), nil)
	if s.Coverage != 0 || s.Importance != 0 || s.Depth != 0 {
		t.Fatalf("components = %v/%v/%v, want all zero", s.Coverage, s.Importance, s.Depth)
	}
	if s.Consistency != 20.0 {
		t.Fatalf("consistency = %v, want 20.0 floor", s.Consistency)
	}
	if s.Grade != "F" {
		t.Fatalf("grade = %q, want F", s.Grade)
	}
}

func TestCalculateMoreSkillsNeverLowersScore(t *testing.T) {
	target := gap.Target{
		Career:   "Data Engineer",
		Required: []string{"Python", "SQL", "AWS", "Docker"},
		Weights:  []float64{0.9, 0.8, 0.7, 0.6},
	}
	base := Calculate(gap.Analyze([]string{"Python"}, target, nil), nil)
	more := Calculate(gap.Analyze([]string{"Python", "SQL"}, target, nil), nil)
	most := Calculate(gap.Analyze([]string{"Python", "SQL", "AWS", "Docker"}, target, nil), nil)

	if more.Overall < base.Overall {
		t.Fatalf("overall dropped from %v to %v after adding a known skill", base.Overall, more.Overall)
	}
	if most.Overall < more.Overall {
		t.Fatalf("overall dropped from %v to %v after adding known skills", more.Overall, most.Overall)
	}
}

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{90, "A"}, {89.9, "B"}, {80, "B"}, {79.9, "C"},
		{70, "C"}, {69.9, "D"}, {60, "D"}, {59.9, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := grade(tc.score); got != tc.want {
			t.Fatalf("grade(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestApplyChangesZeroDeltaKeepsScore(t *testing.T) {
	s := Calculate(analysisFixture(), nil)
	updated := ApplyChanges(s, Changes{})

	if updated.Overall != s.Overall {
		t.Fatalf("overall = %v, want unchanged %v", updated.Overall, s.Overall)
	}
	if updated.ChangeFromBaseline != 0 {
		t.Fatalf("change from baseline = %v, want 0", updated.ChangeFromBaseline)
	}
}

func TestApplyChangesClampsComponents(t *testing.T) {
	s := Calculate(analysisFixture(), nil)
	updated := ApplyChanges(s, Changes{Coverage: 200, Depth: -200, Consistency: 50})

	if updated.Coverage != 100 {
		t.Fatalf("coverage = %v, want clamped to 100", updated.Coverage)
	}
	if updated.Depth != 0 {
		t.Fatalf("depth = %v, want clamped to 0", updated.Depth)
	}
	if updated.Consistency != 100 {
		t.Fatalf("consistency = %v, want clamped to 100", updated.Consistency)
	}
}

func TestApplyChangesRecomputesOverall(t *testing.T) {
	s := Calculate(analysisFixture(), nil)
	updated := ApplyChanges(s, Changes{Coverage: 10, Depth: 6, Consistency: 5})

	wantOverall := round1(60.0*weightCoverage + s.Importance*weightImportance + 56.0*weightDepth + 65.0*weightConsistency)
	if updated.Overall != wantOverall {
		t.Fatalf("overall = %v, want %v", updated.Overall, wantOverall)
	}
	if updated.ChangeFromBaseline <= 0 {
		t.Fatalf("change from baseline = %v, want positive", updated.ChangeFromBaseline)
	}
	if updated.Importance != s.Importance {
		t.Fatalf("importance = %v, want untouched %v", updated.Importance, s.Importance)
	}
}

func TestSuggestionsPickTwoWeakest(t *testing.T) {
	s := Score{Coverage: 80, Importance: 30, Depth: 25, Consistency: 90}
	a := analysisFixture()

	got := Suggestions(s, a)
	if len(got) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(got))
	}
	if got[0].Area != "Skill Mastery" {
		t.Fatalf("first area = %q, want Skill Mastery", got[0].Area)
	}
	if got[1].Area != "Critical Skills" {
		t.Fatalf("second area = %q, want Critical Skills", got[1].Area)
	}
	if got[1].Text != "Prioritize 1 high-importance skills" {
		t.Fatalf("text = %q", got[1].Text)
	}
	if len(got[1].Skills) != 1 || got[1].Skills[0] != "AWS" {
		t.Fatalf("skills = %v, want [AWS]", got[1].Skills)
	}
}

func TestSuggestionsTiesFollowComponentOrder(t *testing.T) {
	s := Score{Coverage: 40, Importance: 40, Depth: 40, Consistency: 40}
	got := Suggestions(s, analysisFixture())

	if len(got) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(got))
	}
	if got[0].Area != "Skill Coverage" || got[1].Area != "Critical Skills" {
		t.Fatalf("areas = %q, %q, want Skill Coverage then Critical Skills", got[0].Area, got[1].Area)
	}
	if got[0].Text != "Focus on learning 2 missing skills" {
		t.Fatalf("text = %q", got[0].Text)
	}
	if got[0].Improvement != "+15-25 points" {
		t.Fatalf("improvement = %q", got[0].Improvement)
	}
}

func TestSuggestionsConsistencyText(t *testing.T) {
	s := Score{Coverage: 90, Importance: 85, Depth: 80, Consistency: 10}
	got := Suggestions(s, analysisFixture())

	var found *Suggestion
	for i := range got {
		if got[i].Area == "Learning Consistency" {
			found = &got[i]
		}
	}
	if found == nil {
		t.Fatalf("no consistency suggestion in %v", got)
	}
	if found.Text != "Maintain regular learning schedule and track progress" {
		t.Fatalf("text = %q", found.Text)
	}
	if len(found.Skills) != 0 {
		t.Fatalf("skills = %v, want empty", found.Skills)
	}
}

func TestRankOrdersAndLabels(t *testing.T) {
	got := Rank([]RankedScore{
		{Career: "Data Analyst", Overall: 70},
		{Career: "Data Engineer", Overall: 85},
		{Career: "ML Engineer", Overall: 60},
		{Career: "Architect", Overall: 45},
	})

	if got[0].Career != "Data Engineer" || got[0].Rank != 1 {
		t.Fatalf("rank 1 = %q (#%d), want Data Engineer #1", got[0].Career, got[0].Rank)
	}
	if got[0].Recommendation != "Top Match - Strongest readiness" {
		t.Fatalf("rank 1 label = %q", got[0].Recommendation)
	}
	if got[1].Career != "Data Analyst" || got[1].Recommendation != "Strong Alternative" {
		t.Fatalf("rank 2 = %q / %q", got[1].Career, got[1].Recommendation)
	}
	if got[2].Recommendation != "Viable with Learning" {
		t.Fatalf("rank 3 label = %q", got[2].Recommendation)
	}
	if got[3].Recommendation != "Long-term Goal" {
		t.Fatalf("rank 4 label = %q", got[3].Recommendation)
	}
}

func TestRankStableOnTies(t *testing.T) {
	got := Rank([]RankedScore{
		{Career: "First", Overall: 75},
		{Career: "Second", Overall: 75},
	})
	if got[0].Career != "First" || got[1].Career != "Second" {
		t.Fatalf("tie order = %q, %q, want input order preserved", got[0].Career, got[1].Career)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []RankedScore{
		{Career: "Low", Overall: 40},
		{Career: "High", Overall: 90},
	}
	Rank(in)
	if in[0].Career != "Low" {
		t.Fatalf("input reordered, first = %q", in[0].Career)
	}
	if in[0].Rank != 0 {
		t.Fatalf("input mutated, rank = %d", in[0].Rank)
	}
}
