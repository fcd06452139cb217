package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	skillsFile    = "skills.csv"
	careersFile   = "careers.csv"
	resourcesFile = "resources.csv"
)

const (
	defaultLearningWeeks = 4
	defaultWeight        = 0.5
)

func Load(dir string) (*Store, error) {
	skills, err := loadSkills(filepath.Join(dir, skillsFile))
	if err != nil {
		return nil, err
	}
	careers, err := loadCareers(filepath.Join(dir, careersFile))
	if err != nil {
		return nil, err
	}
	resources, err := loadResources(filepath.Join(dir, resourcesFile))
	if err != nil {
		return nil, err
	}
	return New(skills, careers, resources), nil
}

func loadSkills(path string) ([]Skill, error) {
	rows, err := readCSV(path, 5)
	if err != nil {
		return nil, err
	}

	skills := make([]Skill, 0, len(rows))
	for _, row := range rows {
		weeks, continuous := parseLearningWeeks(row[3])
		skills = append(skills, Skill{
			Name:          row[0],
			Category:      row[1],
			Difficulty:    strings.ToLower(row[2]),
			LearningWeeks: weeks,
			Continuous:    continuous,
			Prerequisites: splitList(row[4]),
		})
	}
	return skills, nil
}

func loadCareers(path string) ([]Career, error) {
	rows, err := readCSV(path, 8)
	if err != nil {
		return nil, err
	}

	careers := make([]Career, 0, len(rows))
	for _, row := range rows {
		salary, _ := strconv.Atoi(row[6])
		growth, _ := strconv.ParseFloat(row[7], 64)
		careers = append(careers, Career{
			ID:             row[0],
			Name:           row[1],
			Category:       row[2],
			Description:    row[3],
			RequiredSkills: splitList(row[4]),
			Weights:        parseWeights(row[5]),
			AvgSalary:      salary,
			GrowthRate:     growth,
		})
	}
	return careers, nil
}

func loadResources(path string) ([]Resource, error) {
	rows, err := readCSV(path, 6)
	if err != nil {
		return nil, err
	}

	resources := make([]Resource, 0, len(rows))
	for _, row := range rows {
		weeks, _ := strconv.ParseFloat(row[4], 64)
		resources = append(resources, Resource{
			SkillName:     row[0],
			Name:          row[1],
			Type:          row[2],
			URL:           row[3],
			DurationWeeks: weeks,
			Difficulty:    strings.ToLower(row[5]),
		})
	}
	return resources, nil
}

func readCSV(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = columns
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: empty file", filepath.Base(path))
	}

	rows := records[1:]
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = strings.TrimSpace(rows[i][j])
		}
	}
	return rows, nil
}

func parseLearningWeeks(value string) (float64, bool) {
	if strings.EqualFold(value, "continuous") {
		return 0, true
	}
	weeks, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultLearningWeeks, false
	}
	return weeks, false
}

func parseWeights(value string) []float64 {
	parts := splitList(value)
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseFloat(p, 64)
		if err != nil {
			w = defaultWeight
		}
		weights = append(weights, w)
	}
	return weights
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
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
