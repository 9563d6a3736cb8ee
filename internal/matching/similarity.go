package matching

import "strings"

// Similarity scores how alike two strings are, in [0, 1].
type Similarity func(a, b string) float64

// LevenshteinRatio is the default similarity: one minus the edit
// distance normalized by the longer string's length.
func LevenshteinRatio(a, b string) float64 {
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}

	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// ClosestWord returns the whitespace-split word of text most similar to
// token, with its similarity score. The empty string and 0 are returned
// when text has no words.
func ClosestWord(token, text string, sim Similarity) (string, float64) {
	if sim == nil {
		sim = LevenshteinRatio
	}

	best := ""
	bestScore := 0.0
	for _, word := range strings.Fields(text) {
		if score := sim(token, word); score > bestScore {
			best = word
			bestScore = score
		}
	}
	return best, bestScore
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
