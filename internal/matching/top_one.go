package matching

import (
	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/catalog"
)

// topOneStrategy counts keyword substring hits over the full searchable
// corpus of each course and returns the single best match.
type topOneStrategy struct {
	logger *zap.Logger
}

func (s *topOneStrategy) Name() string { return StrategyTopOne }

func (s *topOneStrategy) Recommend(courses *catalog.Courses, profile *Profile) *Result {
	tokens := profile.Keywords()
	s.logger.Debug("extracted profile keywords", zap.Strings("tokens", tokens))

	if len(tokens) == 0 || courses.Len() == 0 {
		return &Result{Type: ResultSuggestion, Message: MsgNoMatch}
	}

	scored := make([]Recommendation, 0, courses.Len())
	for _, course := range courses.Items {
		scored = append(scored, Recommendation{
			Course: course,
			Score:  SubstringScore(course.SearchText(), tokens),
		})
	}

	matched := keepPositive(scored)
	sortByScore(matched)
	logTopScore(s.logger, s.Name(), matched)

	if len(matched) == 0 {
		return &Result{Type: ResultSuggestion, Message: MsgNoMatch}
	}

	best := matched[0]
	return &Result{
		Type:      ResultRecommendations,
		Items:     []Recommendation{best},
		Message:   MsgMatched,
		BestScore: best.Score,
	}
}
