package catalog

import (
	"strings"

	"career-compass/internal/domain/gap"
)

type Skill struct {
	Name          string
	Category      string
	Difficulty    string
	LearningWeeks float64
	Continuous    bool
	Prerequisites []string
}

type Career struct {
	ID             string
	Name           string
	Category       string
	Description    string
	RequiredSkills []string
	Weights        []float64
	AvgSalary      int
	GrowthRate     float64
}

type Resource struct {
	SkillName     string
	Name          string
	Type          string
	URL           string
	DurationWeeks float64
	Difficulty    string
}

func (c Career) CompositeText() string {
	return c.Name + " " + c.Category + " " + c.Description + " " + strings.Join(c.RequiredSkills, ", ")
}

func (c Career) SimilarityText() string {
	return c.Name + " " + c.Category + " " + strings.Join(c.RequiredSkills, " ")
}

type Store struct {
	skills    []Skill
	careers   []Career
	resources []Resource

	skillIndex    map[string]int
	careerIndex   map[string]int
	resourceIndex map[string][]int
}

func New(skills []Skill, careers []Career, resources []Resource) *Store {
	s := &Store{
		skills:        skills,
		careers:       careers,
		resources:     resources,
		skillIndex:    make(map[string]int, len(skills)),
		careerIndex:   make(map[string]int, len(careers)),
		resourceIndex: make(map[string][]int, len(resources)),
	}
	for i, skill := range skills {
		s.skillIndex[strings.ToLower(skill.Name)] = i
	}
	for i, career := range careers {
		s.careerIndex[career.ID] = i
	}
	for i, r := range resources {
		key := strings.ToLower(r.SkillName)
		s.resourceIndex[key] = append(s.resourceIndex[key], i)
	}
	return s
}

func (s *Store) Skills() []Skill {
	return s.skills
}

func (s *Store) SkillNames() []string {
	names := make([]string, len(s.skills))
	for i, skill := range s.skills {
		names[i] = skill.Name
	}
	return names
}

func (s *Store) Skill(name string) (Skill, bool) {
	i, ok := s.skillIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Skill{}, false
	}
	return s.skills[i], true
}

func (s *Store) Careers() []Career {
	return s.careers
}

func (s *Store) Career(id string) (Career, bool) {
	i, ok := s.careerIndex[id]
	if !ok {
		return Career{}, false
	}
	return s.careers[i], true
}

func (s *Store) CareersByCategory(category string) []Career {
	out := make([]Career, 0)
	for _, c := range s.careers {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) Categories() map[string]string {
	out := make(map[string]string, len(s.skills))
	for _, skill := range s.skills {
		out[skill.Name] = skill.Category
	}
	return out
}

func (s *Store) Resources(skill string) []Resource {
	indexes := s.resourceIndex[strings.ToLower(strings.TrimSpace(skill))]
	out := make([]Resource, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, s.resources[i])
	}
	return out
}

func (s *Store) MetaFor(names []string) map[string]gap.SkillMeta {
	out := make(map[string]gap.SkillMeta, len(names))
	for _, name := range names {
		skill, ok := s.Skill(name)
		if !ok {
			continue
		}
		out[name] = meta(skill)
	}
	return out
}

func (s *Store) AllMeta() map[string]gap.SkillMeta {
	out := make(map[string]gap.SkillMeta, len(s.skills))
	for _, skill := range s.skills {
		out[skill.Name] = meta(skill)
	}
	return out
}

func meta(skill Skill) gap.SkillMeta {
	return gap.SkillMeta{
		LearningWeeks: skill.LearningWeeks,
		Continuous:    skill.Continuous,
		Difficulty:    skill.Difficulty,
		Prerequisites: skill.Prerequisites,
	}
}
