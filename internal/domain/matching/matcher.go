package matching

import (
	"strings"

	"career-compass/internal/domain/similarity"
)

type Result struct {
	Known   []string
	Partial []string
	Missing []string
	Score   float64
}

func Calculate(userSkills, required []string) Result {
	res := Result{
		Known:   make([]string, 0, len(required)),
		Partial: make([]string, 0),
		Missing: make([]string, 0),
	}
	if len(required) == 0 {
		return res
	}

	normalized := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		normalized = append(normalized, similarity.Normalize(s))
	}

	for _, req := range required {
		reqNorm := similarity.Normalize(req)
		exact := false
		partial := false

		for _, usr := range normalized {
			if reqNorm == usr {
				exact = true
				break
			}
			if strings.Contains(usr, reqNorm) || strings.Contains(reqNorm, usr) {
				partial = true
			}
		}

		switch {
		case exact:
			res.Known = append(res.Known, req)
		case partial:
			res.Partial = append(res.Partial, req)
		default:
			res.Missing = append(res.Missing, req)
		}
	}

	res.Score = (float64(len(res.Known)) + 0.5*float64(len(res.Partial))) / float64(len(required))
	return res
}
