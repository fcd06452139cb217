package plan

import (
	"fmt"
	"math"
	"sort"
	"time"

	"career-compass/internal/domain/gap"
)

const (
	PaceSlow      = "slow"
	PaceModerate  = "moderate"
	PaceIntensive = "intensive"
)

const (
	TaskLearn   = "Learn"
	TaskImprove = "Improve"
)

const (
	defaultWeeksPerPhase = 4
	defaultHoursPerSkill = 20.0
	defaultHoursPerDay   = 2
	tasksPerPhase        = 3
)

var difficultyPriority = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
}

var activityCatalog = map[string][]string{
	"video":    {"Watch tutorial video", "View course lecture", "Watch coding session"},
	"reading":  {"Read documentation", "Study article", "Review book chapter"},
	"practice": {"Complete coding exercise", "Build mini-project", "Solve problems"},
	"project":  {"Work on portfolio project", "Implement feature", "Debug and refine"},
	"review":   {"Review concepts", "Revisit previous work", "Practice flashcards"},
}

var timeBlocks = map[string]string{
	"short":  "15-30 min",
	"medium": "30-60 min",
	"long":   "1-2 hours",
}

type PhaseTask struct {
	Skill      string
	Type       string
	Priority   int
	Difficulty string
}

type Phase struct {
	Number        int
	DurationWeeks int
	Tasks         []PhaseTask
}

type GapTask struct {
	Skill       string
	Priority    int
	Resources   []string
	HoursNeeded float64
}

type Task struct {
	Skill        string
	Activity     string
	ActivityType string
	Duration     string
	Priority     int
	Resources    []string
	Milestone    string
}

type Estimate struct {
	TotalHours     float64
	DaysNeeded     int
	WeeksNeeded    int
	CompletionDate string
	HoursPerDay    int
}

type Summary struct {
	TotalSkills     int
	Completed       int
	InProgress      int
	NotStarted      int
	AverageProgress float64
}

func WeeklyPhases(missing, partial []string, meta map[string]gap.SkillMeta, weeksPerPhase int) []Phase {
	if weeksPerPhase <= 0 {
		weeksPerPhase = defaultWeeksPerPhase
	}

	tasks := make([]PhaseTask, 0, len(missing)+len(partial))
	for _, skill := range missing {
		tasks = append(tasks, phaseTask(skill, TaskLearn, meta))
	}
	for _, skill := range partial {
		tasks = append(tasks, phaseTask(skill, TaskImprove, meta))
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority < tasks[j].Priority
	})

	phases := make([]Phase, 0, (len(tasks)+tasksPerPhase-1)/tasksPerPhase)
	for i := 0; i < len(tasks); i += tasksPerPhase {
		end := i + tasksPerPhase
		if end > len(tasks) {
			end = len(tasks)
		}
		phases = append(phases, Phase{
			Number:        len(phases) + 1,
			DurationWeeks: weeksPerPhase,
			Tasks:         tasks[i:end],
		})
	}
	return phases
}

func DailyPlan(gaps []GapTask, progress map[string]float64, pace string, availableHours int) []Task {
	numTasks := tasksForPace(pace)

	ordered := make([]GapTask, len(gaps))
	copy(ordered, gaps)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return progress[ordered[i].Skill] > progress[ordered[j].Skill]
	})
	if len(ordered) > numTasks {
		ordered = ordered[:numTasks]
	}

	tasks := make([]Task, 0, len(ordered)+1)
	for i, g := range ordered {
		current := progress[g.Skill]
		activityType := activityTypeFor(current, i)
		activities := activityCatalog[activityType]

		duration := timeBlocks["short"]
		if i == 0 {
			duration = timeBlocks["long"]
		} else if i < numTasks-1 {
			duration = timeBlocks["medium"]
		}

		tasks = append(tasks, Task{
			Skill:        g.Skill,
			Activity:     activities[i%len(activities)],
			ActivityType: activityType,
			Duration:     duration,
			Priority:     g.Priority,
			Resources:    firstN(g.Resources, 2),
			Milestone:    milestone(current),
		})
	}

	tasks = append(tasks, Task{
		Skill:        "Motivation",
		Activity:     "Read success story or watch motivational content",
		ActivityType: "motivation",
		Duration:     "5-10 min",
		Priority:     100,
		Resources:    []string{},
		Milestone:    "Stay motivated!",
	})
	return tasks
}

func CompletionEstimate(gaps []GapTask, hoursPerDay int, now time.Time) Estimate {
	if hoursPerDay <= 0 {
		hoursPerDay = defaultHoursPerDay
	}

	var totalHours float64
	for _, g := range gaps {
		hours := g.HoursNeeded
		if hours <= 0 {
			hours = defaultHoursPerSkill
		}
		totalHours += hours
	}

	days := int(totalHours / float64(hoursPerDay))
	return Estimate{
		TotalHours:     totalHours,
		DaysNeeded:     days,
		WeeksNeeded:    days / 7,
		CompletionDate: now.AddDate(0, 0, days).Format("January 02, 2006"),
		HoursPerDay:    hoursPerDay,
	}
}

func ProgressSummary(progress map[string]float64, gaps []GapTask) Summary {
	total := len(gaps)
	if total == 0 {
		return Summary{}
	}

	s := Summary{TotalSkills: total}
	var sum float64
	for _, g := range gaps {
		p := progress[g.Skill]
		sum += p
		switch {
		case p >= 80:
			s.Completed++
		case p >= 20:
			s.InProgress++
		default:
			s.NotStarted++
		}
	}
	s.AverageProgress = math.Round(sum/float64(total)*10) / 10
	return s
}

func FormatTimeline(weeks float64) string {
	switch {
	case weeks <= 4:
		return fmt.Sprintf("%d weeks (1 month)", int(weeks))
	case weeks <= 12:
		return fmt.Sprintf("%d weeks (%.1f months)", int(weeks), weeks/4)
	case weeks <= 52:
		return fmt.Sprintf("%.1f months", weeks/4)
	default:
		return fmt.Sprintf("%.1f years", weeks/52)
	}
}

func StudyTips(style string) []string {
	tips, ok := studyTips[style]
	if !ok {
		tips = studyTips["visual"]
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

func Badges(progress map[string]float64, totalDays int) []string {
	badges := make([]string, 0, 9)

	if totalDays >= 7 {
		badges = append(badges, "Week Warrior - 7 days streak")
	}
	if totalDays >= 30 {
		badges = append(badges, "Month Master - 30 days streak")
	}
	if totalDays >= 100 {
		badges = append(badges, "Centurion - 100 days streak")
	}

	mastered := 0
	var sum float64
	for _, p := range progress {
		sum += p
		if p >= 80 {
			mastered++
		}
	}
	if mastered >= 1 {
		badges = append(badges, "First Skill Mastered")
	}
	if mastered >= 5 {
		badges = append(badges, "Skill Collector - 5 skills mastered")
	}
	if mastered >= 10 {
		badges = append(badges, "Expert - 10 skills mastered")
	}

	avg := 0.0
	if len(progress) > 0 {
		avg = sum / float64(len(progress))
	}
	if avg >= 25 {
		badges = append(badges, "Quarter Way There")
	}
	if avg >= 50 {
		badges = append(badges, "Halfway Hero")
	}
	if avg >= 75 {
		badges = append(badges, "Almost There!")
	}
	return badges
}

var studyTips = map[string][]string{
	"visual": {
		"Watch video tutorials and animated explanations",
		"Create mind maps and diagrams",
		"Use flowcharts to understand processes",
		"Take screenshots and annotate them",
		"Use color coding in notes",
	},
	"auditory": {
		"Listen to podcasts and audiobooks",
		"Explain concepts out loud",
		"Join study groups and discussions",
		"Record yourself explaining topics",
		"Use mnemonic devices and rhymes",
	},
	"kinesthetic": {
		"Learn by doing - code along with tutorials",
		"Build projects immediately after learning",
		"Take breaks and move while studying",
		"Write code by hand first",
		"Practice with real-world scenarios",
	},
	"reading": {
		"Read documentation thoroughly",
		"Take detailed notes",
		"Follow structured textbooks",
		"Write summaries of what you learn",
		"Keep a learning journal",
	},
}

func phaseTask(skill, taskType string, meta map[string]gap.SkillMeta) PhaseTask {
	difficulty := "intermediate"
	if info, ok := meta[skill]; ok && info.Difficulty != "" {
		difficulty = info.Difficulty
	}
	priority, ok := difficultyPriority[difficulty]
	if !ok {
		priority = 2
	}
	return PhaseTask{Skill: skill, Type: taskType, Priority: priority, Difficulty: difficulty}
}

func tasksForPace(pace string) int {
	switch pace {
	case PaceSlow:
		return 2
	case PaceModerate:
		return 3
	default:
		return 4
	}
}

func activityTypeFor(progress float64, position int) string {
	var options []string
	switch {
	case progress < 20:
		options = []string{"video", "reading"}
	case progress < 50:
		options = []string{"reading", "practice"}
	case progress < 80:
		return "practice"
	default:
		options = []string{"project", "review"}
	}
	return options[position%len(options)]
}

func milestone(progress float64) string {
	switch {
	case progress < 20:
		return "Getting Started"
	case progress < 40:
		return "Building Foundation"
	case progress < 60:
		return "Developing Skills"
	case progress < 80:
		return "Advanced Practice"
	default:
		return "Mastery & Projects"
	}
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
