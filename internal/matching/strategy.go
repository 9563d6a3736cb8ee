package matching

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/catalog"
)

// Strategy names accepted by the matching.strategy configuration key.
const (
	StrategyTopOne     = "top_one"
	StrategyTopK       = "top_k"
	StrategyThreshold  = "threshold"
	StrategyFirstExact = "first_exact"
)

// Result types.
const (
	ResultRecommendations = "recommendations"
	ResultSuggestion      = "suggestion"
)

// User-facing messages, kept in French like the course corpus.
const (
	MsgMatched      = "Voici une formation qui correspond à votre profil."
	MsgNoMatch      = "Aucune formation ne correspond aux mots-clés fournis."
	MsgNoCourse     = "Aucune formation pertinente"
	MsgSuggestBilan = "Aucune formation ne correspond clairement à votre profil. Un bilan de compétences est recommandé."
)

// DefaultTopK and DefaultThreshold mirror the original recommendation
// parameters.
const (
	DefaultTopK      = 3
	DefaultThreshold = 1.5
)

// Recommendation is one scored course.
type Recommendation struct {
	Course *catalog.Course
	Score  float64
}

// Result is the outcome of a strategy run. A suggestion result is a
// first-class outcome, never an error: it stands for "no course matched
// well enough, consider a competency assessment".
type Result struct {
	Type      string
	Items     []Recommendation
	Message   string
	BestScore float64
}

// Matched reports whether the result carries at least one recommended course.
func (r *Result) Matched() bool {
	return r.Type == ResultRecommendations && len(r.Items) > 0
}

// Best returns the highest-ranked recommendation, or nil.
func (r *Result) Best() *Recommendation {
	if len(r.Items) == 0 {
		return nil
	}
	return &r.Items[0]
}

// Strategy ranks a course corpus against a profile. Implementations are
// stateless between calls; the corpus is shared and read-only.
type Strategy interface {
	Name() string
	Recommend(courses *catalog.Courses, profile *Profile) *Result
}

// Config selects and tunes a strategy.
type Config struct {
	Strategy  string
	TopK      int
	Threshold float64
	Fuzzy     FuzzyConfig
}

func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = StrategyThreshold
	}
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	return c
}

// New builds the strategy named by cfg.Strategy.
func New(cfg Config, logger *zap.Logger) (Strategy, error) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Strategy {
	case StrategyTopOne:
		return &topOneStrategy{logger: logger}, nil
	case StrategyTopK:
		return &topKStrategy{k: cfg.TopK, fuzzy: cfg.Fuzzy, logger: logger}, nil
	case StrategyThreshold:
		return &thresholdStrategy{k: cfg.TopK, threshold: cfg.Threshold, logger: logger}, nil
	case StrategyFirstExact:
		return &firstExactStrategy{logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown matching strategy: %s", cfg.Strategy)
	}
}

// sortByScore orders recommendations by score descending. The sort is
// stable so that ties keep corpus order.
func sortByScore(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}

// keepPositive drops zero-score entries, preserving order.
func keepPositive(items []Recommendation) []Recommendation {
	kept := items[:0]
	for _, item := range items {
		if item.Score > 0 {
			kept = append(kept, item)
		}
	}
	return kept
}

func logTopScore(logger *zap.Logger, strategy string, items []Recommendation) {
	if len(items) == 0 {
		logger.Info("no course scored above zero", zap.String("strategy", strategy))
		return
	}
	logger.Info("top course scored",
		zap.String("strategy", strategy),
		zap.String("course", items[0].Course.Title),
		zap.Float64("score", items[0].Score),
	)
}
