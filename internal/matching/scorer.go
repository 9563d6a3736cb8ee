package matching

import (
	"strings"

	"github.com/jmoreau/formadvisor/internal/catalog"
)

// Weights of the field-weighted score. A level hit is weaker evidence
// than an objective or domain hit.
const (
	objectiveWeight = 1.0
	domainWeight    = 1.0
	levelWeight     = 0.5
)

// Fuzzy defaults, matching the close-match lookup of the original
// recommendation logic.
const (
	DefaultFuzzyCutoff = 0.8
	DefaultFuzzyBonus  = 0.5
)

// FuzzyConfig controls the close-match bonus awarded to terms with no
// exact substring hit.
type FuzzyConfig struct {
	Enabled    bool
	Cutoff     float64
	Bonus      float64
	Similarity Similarity
}

func (f FuzzyConfig) withDefaults() FuzzyConfig {
	if f.Cutoff <= 0 {
		f.Cutoff = DefaultFuzzyCutoff
	}
	if f.Bonus <= 0 {
		f.Bonus = DefaultFuzzyBonus
	}
	if f.Similarity == nil {
		f.Similarity = LevenshteinRatio
	}
	return f
}

// SubstringScore counts the tokens appearing as substrings of text.
// Each token contributes at most 1, no matter how often it occurs.
func SubstringScore(text string, tokens Tokens) float64 {
	score := 0.0
	for _, token := range tokens {
		if strings.Contains(text, token) {
			score++
		}
	}
	return score
}

// WeightedScore scores a structured profile against text: +1 per
// objective term found as a substring, +1 per domain term, +0.5 per
// level term. When fuzzy is enabled, a term with no exact hit whose
// closest word in text reaches the cutoff earns the bonus instead of 0.
func WeightedScore(text string, profile *Profile, fuzzy FuzzyConfig) float64 {
	fuzzy = fuzzy.withDefaults()

	score := 0.0
	score += scoreTerms(text, profile.ObjectiveTerms(), objectiveWeight, fuzzy)
	score += scoreTerms(text, profile.DomainTerms(), domainWeight, fuzzy)
	score += scoreTerms(text, profile.LevelTerms(), levelWeight, fuzzy)
	return score
}

func scoreTerms(text string, terms []string, weight float64, fuzzy FuzzyConfig) float64 {
	score := 0.0
	for _, term := range terms {
		if strings.Contains(text, term) {
			score += weight
			continue
		}
		if !fuzzy.Enabled {
			continue
		}
		if _, similarity := ClosestWord(term, text, fuzzy.Similarity); similarity >= fuzzy.Cutoff {
			score += fuzzy.Bonus
		}
	}
	return score
}

// ExactFieldMatch reports whether any profile term equals (case
// insensitive) an element of the corresponding course field: objective
// terms against objectives, domain terms against prerequisites, the
// audience tag against the audience list.
func ExactFieldMatch(course *catalog.Course, profile *Profile) bool {
	if containsAnyFold(course.Objectives, profile.ObjectiveTerms()) {
		return true
	}
	if containsAnyFold(course.Prerequisites, profile.DomainTerms()) {
		return true
	}
	if tag := profile.AudienceTerm(); tag != "" && containsAnyFold(course.Audience, []string{tag}) {
		return true
	}
	return false
}

func containsAnyFold(elements, terms []string) bool {
	for _, element := range elements {
		for _, term := range terms {
			if strings.EqualFold(strings.TrimSpace(element), term) {
				return true
			}
		}
	}
	return false
}
