package skillext

import (
	"regexp"
	"strings"

	"career-compass/internal/domain/similarity"
)

func ExtractFromText(text string, known []string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	normalized := similarity.Normalize(text)
	lowered := strings.ToLower(text)

	out := make([]string, 0, len(known))
	for _, skill := range known {
		if matchesNormalized(normalized, similarity.Normalize(skill)) || matchesPattern(lowered, strings.ToLower(skill)) {
			out = append(out, skill)
		}
	}
	return out
}

func ExtractFromList(items, known []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		resolved := matchKnown(item, known)
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
	}
	return out
}

func Categorize(skills []string, categories map[string]string) map[string][]string {
	out := make(map[string][]string)
	for _, skill := range skills {
		category, ok := categories[skill]
		if !ok {
			category = "Other"
		}
		out[category] = append(out[category], skill)
	}
	return out
}

func matchesNormalized(text, skill string) bool {
	if skill == "" {
		return false
	}
	return strings.Contains(text, skill) || strings.Contains(skill, text)
}

func matchesPattern(text, skill string) bool {
	if skill == "" {
		return false
	}
	quoted := regexp.QuoteMeta(skill)
	for _, variant := range []string{quoted, quoted + "s", quoted + "ing"} {
		if regexp.MustCompile(`\b` + variant + `\b`).MatchString(text) {
			return true
		}
	}
	return false
}

func matchKnown(item string, known []string) string {
	normalized := similarity.Normalize(item)
	if normalized == "" {
		return item
	}
	for _, skill := range known {
		if similarity.Normalize(skill) == normalized {
			return skill
		}
	}
	for _, skill := range known {
		candidate := similarity.Normalize(skill)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, normalized) || strings.Contains(normalized, candidate) {
			return skill
		}
	}
	return item
}
