package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type recommendCacheKeyInput struct {
	Skills    []string `json:"skills"`
	Interests string   `json:"interests"`
	TopN      int      `json:"top_n"`
}

type gapCacheKeyInput struct {
	CareerID string   `json:"career_id"`
	Skills   []string `json:"skills"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeCacheValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = normalizeCacheValue(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func RecommendationsCacheKey(params RecommendParams) string {
	in := recommendCacheKeyInput{
		Skills:    normalizeCacheValues(params.Skills),
		Interests: normalizeCacheValue(params.Interests),
		TopN:      params.TopN,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "careers:recommend:" + hex.EncodeToString(sum[:])
}

func GapAnalysisCacheKey(careerID string, skills []string) string {
	in := gapCacheKeyInput{
		CareerID: normalizeCacheValue(careerID),
		Skills:   normalizeCacheValues(skills),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "careers:gap:" + hex.EncodeToString(sum[:])
}

func ResourcesCacheKey(skill string) string {
	return "resources:skill:" + strings.ToLower(strings.TrimSpace(skill))
}
