package matching

import (
	"math"
	"testing"
)

func TestLevenshteinRatio(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "identical", a: "python", b: "python", expected: 1},
		{name: "empty against word", a: "", b: "python", expected: 0},
		{name: "both empty", a: "", b: "", expected: 1},
		{name: "one substitution", a: "python", b: "pithon", expected: 1 - 1.0/6},
		{name: "one deletion", a: "pythn", b: "python", expected: 1 - 1.0/6},
		{name: "unrelated", a: "sql", b: "cuisine", expected: 1 - 6.0/7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LevenshteinRatio(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Fatalf("expected ratio %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestClosestWord(t *testing.T) {
	t.Parallel()

	word, score := ClosestWord("pythn", "apprendre python pas à pas", nil)
	if word != "python" {
		t.Fatalf("expected closest word python, got %q", word)
	}
	if score < 0.8 {
		t.Fatalf("expected score of at least 0.8, got %v", score)
	}

	word, score = ClosestWord("python", "", nil)
	if word != "" || score != 0 {
		t.Fatalf("expected no match on empty text, got %q/%v", word, score)
	}
}
