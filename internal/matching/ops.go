package matching

import (
	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/catalog"
)

// Convenience entry points for callers that do not need a configured
// strategy instance. Each maps to one of the named strategies.

// Recommend returns the single best substring match, or a fallback.
func Recommend(courses *catalog.Courses, profile *Profile, logger *zap.Logger) *Result {
	strategy, _ := New(Config{Strategy: StrategyTopOne}, logger)
	return strategy.Recommend(courses, profile)
}

// RecommendTopK returns the k best field-weighted matches, zero scores
// included.
func RecommendTopK(courses *catalog.Courses, profile *Profile, k int, logger *zap.Logger) *Result {
	strategy, _ := New(Config{Strategy: StrategyTopK, TopK: k, Fuzzy: FuzzyConfig{Enabled: true}}, logger)
	return strategy.Recommend(courses, profile)
}

// RecommendOrSuggestAssessment recommends the top k courses when the
// best score clears threshold, and suggests a competency assessment
// otherwise.
func RecommendOrSuggestAssessment(courses *catalog.Courses, profile *Profile, threshold float64, k int, logger *zap.Logger) *Result {
	strategy, _ := New(Config{Strategy: StrategyThreshold, Threshold: threshold, TopK: k}, logger)
	return strategy.Recommend(courses, profile)
}

// FirstExactMatch returns the first course in corpus order with an
// exact field match, or a fallback.
func FirstExactMatch(courses *catalog.Courses, profile *Profile, logger *zap.Logger) *Result {
	strategy, _ := New(Config{Strategy: StrategyFirstExact}, logger)
	return strategy.Recommend(courses, profile)
}
