package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/assistant"
	"github.com/jmoreau/formadvisor/internal/matching"
)

type stubGenerator struct {
	responses  []string
	errs       []error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	idx := s.calls
	s.calls++
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", errors.New("no scripted response")
}

func (s *stubGenerator) Model() string { return "stub-model" }

func TestResponderReply(t *testing.T) {
	stub := &stubGenerator{responses: []string{"Je vous conseille la formation Python."}}
	responder := NewResponder(stub, 2, zap.NewNop())

	profile := &matching.Profile{Objective: "Devenir Data Analyst", Knowledge: "python"}
	history := []assistant.Exchange{{Role: "user", Content: "Bonjour"}}

	reply, err := responder.Reply(context.Background(), profile, history, "Quelle formation choisir ?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Je vous conseille la formation Python." {
		t.Fatalf("unexpected reply: %s", reply)
	}

	if !strings.Contains(stub.lastPrompt, "Question: Quelle formation choisir ?") {
		t.Fatalf("expected question in prompt, got: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "objectif: Devenir Data Analyst") {
		t.Fatalf("expected profile in prompt, got: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "- user: Bonjour") {
		t.Fatalf("expected history in prompt, got: %s", stub.lastPrompt)
	}
}

func TestResponderExhaustsRetries(t *testing.T) {
	boom := errors.New("quota exceeded")
	stub := &stubGenerator{errs: []error{boom, boom, boom}}
	responder := NewResponder(stub, 2, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := responder.Reply(ctx, nil, nil, "Bonjour"); err == nil {
		t.Fatalf("expected an error after exhausting retries")
	}
	if stub.calls == 0 {
		t.Fatalf("expected at least one attempt")
	}
}

func TestBuildPromptWithoutProfileOrHistory(t *testing.T) {
	t.Parallel()

	prompt := buildPrompt(nil, nil, "Bonjour")
	if !strings.Contains(prompt, "Question: Bonjour") {
		t.Fatalf("expected question line, got: %s", prompt)
	}
	if strings.Contains(prompt, "Profil de l'utilisateur") {
		t.Fatalf("did not expect a profile section: %s", prompt)
	}
	if strings.Contains(prompt, "Historique") {
		t.Fatalf("did not expect a history section: %s", prompt)
	}
}
