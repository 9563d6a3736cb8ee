package matching

import (
	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/catalog"
)

// topKStrategy scores the structured profile terms against each course's
// headline text with the field weights and the fuzzy close-match bonus,
// and keeps the K best courses whatever their scores.
type topKStrategy struct {
	k      int
	fuzzy  FuzzyConfig
	logger *zap.Logger
}

func (s *topKStrategy) Name() string { return StrategyTopK }

func (s *topKStrategy) Recommend(courses *catalog.Courses, profile *Profile) *Result {
	if profile.IsEmpty() || courses.Len() == 0 {
		return &Result{Type: ResultSuggestion, Message: MsgNoMatch}
	}

	fuzzy := s.fuzzy
	fuzzy.Enabled = true

	scored := make([]Recommendation, 0, courses.Len())
	for _, course := range courses.Items {
		scored = append(scored, Recommendation{
			Course: course,
			Score:  WeightedScore(course.HeadlineText(), profile, fuzzy),
		})
	}

	sortByScore(scored)
	logTopScore(s.logger, s.Name(), scored)

	if len(scored) > s.k {
		scored = scored[:s.k]
	}

	return &Result{
		Type:      ResultRecommendations,
		Items:     scored,
		Message:   MsgMatched,
		BestScore: scored[0].Score,
	}
}
