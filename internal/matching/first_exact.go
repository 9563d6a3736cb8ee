package matching

import (
	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/catalog"
)

// firstExactStrategy scans the corpus in load order and returns the
// first course with an exact field match: a profile objective equal to
// a course objective, a known competency equal to a prerequisite, or
// the derived audience tag equal to an audience entry.
type firstExactStrategy struct {
	logger *zap.Logger
}

func (s *firstExactStrategy) Name() string { return StrategyFirstExact }

func (s *firstExactStrategy) Recommend(courses *catalog.Courses, profile *Profile) *Result {
	if profile.IsEmpty() {
		return &Result{Type: ResultSuggestion, Message: MsgNoMatch}
	}

	for _, course := range courses.Items {
		if !ExactFieldMatch(course, profile) {
			continue
		}

		s.logger.Info("exact field match",
			zap.String("strategy", s.Name()),
			zap.String("course", course.Title),
		)

		return &Result{
			Type:      ResultRecommendations,
			Items:     []Recommendation{{Course: course, Score: 1}},
			Message:   MsgMatched,
			BestScore: 1,
		}
	}

	return &Result{Type: ResultSuggestion, Message: MsgNoMatch}
}
