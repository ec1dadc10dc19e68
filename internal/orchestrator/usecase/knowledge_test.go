package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
)

func TestKnowledgeLookup(t *testing.T) {
	kb := &mockKnowledgeRepo{
		result: model.KnowledgeResult{
			Results: []string{
				"A deductible is the amount you pay before coverage applies.",
				"Comprehensive plans have a $500 deductible.",
				"Collision coverage pays for damage to your own vehicle.",
			},
			Sources: []string{"faq", "plans", "coverage"},
			Query:   "What is a deductible?",
		},
	}
	uc := newTestUseCase(&mockInsuranceRepo{}, kb)

	res := runTurn(t, uc, "s1", "What is a deductible?")

	if len(res.Messages) != 1 {
		t.Fatalf("messages = %+v", res.Messages)
	}
	// Top two snippets joined with a blank line; the third is dropped.
	want := "A deductible is the amount you pay before coverage applies.\n\nComprehensive plans have a $500 deductible."
	if res.Messages[0].Text != want {
		t.Errorf("answer = %q", res.Messages[0].Text)
	}
	card, ok := res.Cards[orchestrator.CardKnowledgeBase].(model.KnowledgeResult)
	if !ok {
		t.Fatalf("expected knowledge_base card, got %+v", res.Cards)
	}
	if len(card.Results) != 3 || len(card.Sources) != 3 {
		t.Errorf("card should carry all ranked results: %+v", card)
	}
	if len(res.Actions) != 0 {
		t.Error("knowledge turns carry no actions")
	}
	if res.State.LastIntent != "KNOWLEDGE_LOOKUP" {
		t.Errorf("last intent = %q", res.State.LastIntent)
	}
}

func TestKnowledgeLookupEmpty(t *testing.T) {
	uc := newTestUseCase(&mockInsuranceRepo{}, &mockKnowledgeRepo{})

	res := runTurn(t, uc, "s1", "faq about towing")
	if len(res.Messages) != 1 || res.Messages[0].Text != msgNoKnowledge {
		t.Errorf("messages = %+v", res.Messages)
	}
	if len(res.Cards) != 0 {
		t.Errorf("no card expected on an empty result, got %+v", res.Cards)
	}
}

func TestKnowledgeLookupFailureDegrades(t *testing.T) {
	kb := &mockKnowledgeRepo{searchErr: errors.New("connection refused")}
	uc := newTestUseCase(&mockInsuranceRepo{}, kb)

	res := runTurn(t, uc, "s1", "what does my deductible cover")
	if len(res.Messages) != 1 {
		t.Fatalf("messages = %+v", res.Messages)
	}
	if res.Messages[0].From != orchestrator.FromSystem {
		t.Errorf("degraded answer from = %q, want system", res.Messages[0].From)
	}
	if !strings.HasPrefix(res.Messages[0].Text, "KB error: ") {
		t.Errorf("message = %q", res.Messages[0].Text)
	}
}

func TestIngestDocuments(t *testing.T) {
	kb := &mockKnowledgeRepo{}
	uc := newTestUseCase(&mockInsuranceRepo{}, kb)
	ctx := context.Background()
	sc := model.Scope{SessionID: "admin", UserRole: "admin"}

	t.Run("Empty", func(t *testing.T) {
		err := uc.IngestDocuments(ctx, sc, nil)
		if !errors.Is(err, orchestrator.ErrNoDocuments) {
			t.Errorf("err = %v, want ErrNoDocuments", err)
		}
	})

	t.Run("Forwards Documents", func(t *testing.T) {
		docs := []orchestrator.Document{
			{Title: "deductibles", Content: "A deductible is...", Metadata: map[string]string{"category": "faq"}},
			{Title: "claims", Content: "To file a claim..."},
		}
		if err := uc.IngestDocuments(ctx, sc, docs); err != nil {
			t.Fatalf("IngestDocuments: %v", err)
		}
		if len(kb.ingested) != 2 {
			t.Fatalf("ingested = %d docs, want 2", len(kb.ingested))
		}
		if kb.ingested[0].Title != "deductibles" || kb.ingested[0].Metadata["category"] != "faq" {
			t.Errorf("ingested[0] = %+v", kb.ingested[0])
		}
	})
}
