package similarity

import (
	"math"
	"sort"
)

const maxFeatures = 500

type Index struct {
	vocab map[string]int
	idf   []float64
	docs  []map[int]float64
}

func NewIndex(corpus []string) *Index {
	tokenized := make([][]string, len(corpus))
	counts := make(map[string]int)
	docFreq := make(map[string]int)

	for i, text := range corpus {
		terms := ngrams(tokenize(text))
		tokenized[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			counts[t]++
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			docFreq[t]++
		}
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	total := float64(len(corpus))
	for i, t := range terms {
		vocab[t] = i
		idf[i] = math.Log((1+total)/(1+float64(docFreq[t]))) + 1
	}

	ix := &Index{
		vocab: vocab,
		idf:   idf,
		docs:  make([]map[int]float64, len(corpus)),
	}
	for i, terms := range tokenized {
		ix.docs[i] = ix.vectorize(terms)
	}
	return ix
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.docs)
}

func (ix *Index) Terms() int {
	if ix == nil {
		return 0
	}
	return len(ix.vocab)
}

func (ix *Index) Score(query string) []float64 {
	if ix == nil || len(ix.docs) == 0 {
		return []float64{}
	}

	scores := make([]float64, len(ix.docs))
	queryVec := ix.vectorize(ngrams(tokenize(query)))
	if len(queryVec) == 0 {
		return scores
	}

	for i, doc := range ix.docs {
		var dot float64
		for id, w := range queryVec {
			if dw, ok := doc[id]; ok {
				dot += w * dw
			}
		}
		scores[i] = clamp01(dot)
	}
	return scores
}

func (ix *Index) vectorize(terms []string) map[int]float64 {
	vec := make(map[int]float64, len(terms))
	for _, t := range terms {
		if id, ok := ix.vocab[t]; ok {
			vec[id]++
		}
	}

	var norm float64
	for id := range vec {
		vec[id] *= ix.idf[id]
		norm += vec[id] * vec[id]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for id := range vec {
			vec[id] /= norm
		}
	}
	return vec
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
