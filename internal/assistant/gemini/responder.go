package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/assistant"
	"github.com/jmoreau/formadvisor/internal/matching"
)

const (
	defaultMaxRetries = 2
	retryBackoff      = 2 * time.Second
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Responder answers conversational queries through Gemini, retrying
// transient failures with a fixed backoff.
type Responder struct {
	generator  contentGenerator
	maxRetries int
	logger     *zap.Logger
}

// NewResponder wraps a content generator into an assistant.Responder.
func NewResponder(generator contentGenerator, maxRetries int, logger *zap.Logger) *Responder {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{generator: generator, maxRetries: maxRetries, logger: logger}
}

func (r *Responder) Reply(ctx context.Context, profile *matching.Profile, history []assistant.Exchange, question string) (string, error) {
	prompt := buildPrompt(profile, history, question)

	var lastErr error
	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		reply, err := r.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		r.logger.Warn("gemini reply failed",
			zap.String("model", r.generator.Model()),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if attempt < r.maxRetries {
			if err := waitFor(ctx, retryBackoff); err != nil {
				return "", err
			}
		}
	}

	return "", fmt.Errorf("gemini reply after %d attempts: %w", r.maxRetries, lastErr)
}

func buildPrompt(profile *matching.Profile, history []assistant.Exchange, question string) string {
	var b strings.Builder

	b.WriteString("Tu es un conseiller en formation professionnelle. ")
	b.WriteString("Réponds en français, de façon concise et utile.\n\n")

	if profile != nil {
		b.WriteString("Profil de l'utilisateur:\n")
		writeProfileLine(&b, "objectif", profile.Objective)
		writeProfileLine(&b, "niveau", profile.Level)
		writeProfileLine(&b, "compétences", profile.Knowledge)
		writeProfileLine(&b, "situation", profile.Situation)
		writeProfileLine(&b, "attentes", profile.Expectations)
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("Historique de la conversation:\n")
		for _, exchange := range history {
			role := strings.TrimSpace(exchange.Role)
			if role == "" {
				role = "user"
			}
			fmt.Fprintf(&b, "- %s: %s\n", role, strings.TrimSpace(exchange.Content))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Question: %s\n", strings.TrimSpace(question))

	return b.String()
}

func writeProfileLine(b *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}

// waitFor sleeps for d unless the context is cancelled first.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
