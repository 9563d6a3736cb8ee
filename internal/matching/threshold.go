package matching

import (
	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/catalog"
)

// thresholdStrategy ranks courses by the field-weighted score and only
// recommends when the best score clears the configured threshold;
// otherwise it suggests a competency assessment, carrying the best
// score observed (0 on an empty corpus).
type thresholdStrategy struct {
	k         int
	threshold float64
	logger    *zap.Logger
}

func (s *thresholdStrategy) Name() string { return StrategyThreshold }

func (s *thresholdStrategy) Recommend(courses *catalog.Courses, profile *Profile) *Result {
	scored := make([]Recommendation, 0, courses.Len())
	for _, course := range courses.Items {
		scored = append(scored, Recommendation{
			Course: course,
			Score:  WeightedScore(course.HeadlineText(), profile, FuzzyConfig{}),
		})
	}

	sortByScore(scored)
	logTopScore(s.logger, s.Name(), scored)

	if len(scored) == 0 || scored[0].Score < s.threshold {
		best := 0.0
		if len(scored) > 0 {
			best = scored[0].Score
		}
		return &Result{
			Type:      ResultSuggestion,
			Message:   MsgSuggestBilan,
			BestScore: best,
		}
	}

	best := scored[0].Score
	if len(scored) > s.k {
		scored = scored[:s.k]
	}

	return &Result{
		Type:      ResultRecommendations,
		Items:     keepPositive(scored),
		Message:   MsgMatched,
		BestScore: best,
	}
}
