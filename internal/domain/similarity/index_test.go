package similarity

import (
	"fmt"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Python", "python"},
		{"Node.js", "node js"},
		{"C++", "c"},
		{"Python, SQL", "python, sql"},
		{"  Machine   Learning  ", "machine learning"},
		{"AWS (EC2/S3)", "aws ec2 s3"},
		{"données", "donn es"},
	}

	for _, c := range cases {
		got := Normalize(c.in)
		if got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokenizeDropsStopWordsAndShortTokens(t *testing.T) {
	got := tokenize("The Rust language and R are great for data")
	want := []string{"rust", "language", "great", "data"}
	if len(got) != len(want) {
		t.Fatalf("tokenize returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokenize returned %v, want %v", got, want)
		}
	}
}

func TestScoreAlignedWithCorpus(t *testing.T) {
	corpus := []string{
		"Data Scientist Data Science statistical modeling machine learning Python",
		"Frontend Developer Engineering JavaScript React CSS interfaces",
		"DevOps Engineer Infrastructure Docker Kubernetes AWS automation",
	}
	ix := NewIndex(corpus)

	scores := ix.Score("Python machine learning statistics")
	if len(scores) != len(corpus) {
		t.Fatalf("expected %d scores, got %d", len(corpus), len(scores))
	}
	for i, s := range scores {
		if s < 0 || s > 1 {
			t.Fatalf("score[%d] = %f out of [0,1]", i, s)
		}
	}
	if scores[0] <= scores[1] || scores[0] <= scores[2] {
		t.Fatalf("expected data science doc to rank first, got %v", scores)
	}
}

func TestScoreBigramSignal(t *testing.T) {
	corpus := []string{
		"machine learning models training",
		"machine shop tools equipment",
	}
	ix := NewIndex(corpus)

	scores := ix.Score("machine learning")
	if scores[0] <= scores[1] {
		t.Fatalf("expected bigram doc to outrank unigram doc, got %v", scores)
	}
}

func TestScoreDeterministic(t *testing.T) {
	corpus := []string{
		"backend engineer Go PostgreSQL Redis",
		"data analyst SQL dashboards reporting",
	}
	first := NewIndex(corpus).Score("Go backend services")
	second := NewIndex(corpus).Score("Go backend services")

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("scores differ between runs: %v vs %v", first, second)
		}
	}
}

func TestScoreDegenerateInputs(t *testing.T) {
	ix := NewIndex([]string{"cloud security networking"})

	for _, query := range []string{"", "the and of", "zzzz"} {
		scores := ix.Score(query)
		if len(scores) != 1 {
			t.Fatalf("expected 1 score, got %d", len(scores))
		}
		if scores[0] != 0 {
			t.Fatalf("query %q: expected 0, got %f", query, scores[0])
		}
	}

	empty := NewIndex(nil)
	if got := empty.Score("anything"); len(got) != 0 {
		t.Fatalf("empty corpus: expected no scores, got %v", got)
	}
}

func TestVocabularyCap(t *testing.T) {
	corpus := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		corpus = append(corpus, fmt.Sprintf("term%03da term%03db term%03dc", i, i, i))
	}
	ix := NewIndex(corpus)
	if ix.Terms() != maxFeatures {
		t.Fatalf("vocabulary %d, want cap %d", ix.Terms(), maxFeatures)
	}
}
