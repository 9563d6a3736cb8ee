package matching

import (
	"sort"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		objective string
		knowledge string
		expected  []string
	}{
		{
			name:      "objective and comma separated knowledge",
			objective: "Devenir Data Analyst",
			knowledge: "python, sql",
			expected:  []string{"analyst", "data", "devenir", "python", "sql"},
		},
		{
			name:      "duplicates are dropped",
			objective: "Python python",
			knowledge: "python",
			expected:  []string{"python"},
		},
		{
			name:      "both empty",
			objective: "",
			knowledge: "",
			expected:  []string{},
		},
		{
			name:      "commas and extra whitespace only",
			objective: " , ,, ",
			knowledge: "   ",
			expected:  []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := ExtractKeywords(tc.objective, tc.knowledge)

			got := append([]string{}, tokens...)
			sort.Strings(got)

			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tc.expected), len(got), got)
			}
			for i, token := range tc.expected {
				if got[i] != token {
					t.Fatalf("expected tokens %v, got %v", tc.expected, got)
				}
			}
		})
	}
}

func TestTokensContains(t *testing.T) {
	t.Parallel()

	tokens := ExtractKeywords("Devenir Data Analyst", "python")
	if !tokens.Contains("python") {
		t.Fatalf("expected tokens to contain python")
	}
	if tokens.Contains("sql") {
		t.Fatalf("did not expect tokens to contain sql")
	}
}
