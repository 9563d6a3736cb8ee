package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoreau/formadvisor/internal/matching"
)

// Exchange is one prior turn of the conversation, supplied by the client.
// History is never persisted server-side.
type Exchange struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// Responder produces the reply for a conversational query.
type Responder interface {
	Reply(ctx context.Context, profile *matching.Profile, history []Exchange, question string) (string, error)
}

// Canned answers without any generative backend. This is the default
// responder while no AI provider is configured.
type Canned struct{}

func (Canned) Reply(_ context.Context, _ *matching.Profile, _ []Exchange, question string) (string, error) {
	return fmt.Sprintf("Réponse fictive à '%s'. (Pas de LLM)", strings.TrimSpace(question)), nil
}
