package usecase

import (
	"testing"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
)

func TestSubmitClaimSlotFlow(t *testing.T) {
	ins := &mockInsuranceRepo{
		submitted: model.Claim{ClaimID: "CLM99", PolicyID: "POL-1002", Status: "OPEN"},
	}
	uc := newTestUseCase(ins, &mockKnowledgeRepo{})

	res := runTurn(t, uc, "s1", "I want to file a claim")
	if len(res.Messages) != 1 || res.Messages[0].Text != "Please provide your policy_id." {
		t.Fatalf("turn 1 messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "POL-1002")
	if len(res.Messages) != 1 || res.Messages[0].Text != "Please provide the vehicle (make/model/year)." {
		t.Fatalf("turn 2 messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "2021 Honda Civic")
	if len(res.Messages) != 1 || res.Messages[0].Text != "Please describe the damage (at least 10 characters)." {
		t.Fatalf("turn 3 messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "Rear bumper dented in a parking lot")
	if len(res.Actions) != 1 {
		t.Fatalf("turn 4 actions = %+v", res.Actions)
	}
	want := "Submit claim for policy POL-1002 on vehicle '2021 Honda Civic' with description 'Rear bumper dented in a parking lot'?"
	if res.Actions[0].Summary != want {
		t.Errorf("summary = %q\nwant      %q", res.Actions[0].Summary, want)
	}
	if !res.State.PendingConfirmation {
		t.Fatal("expected pending confirmation once all slots are filled")
	}
	if ins.submitCalls != 0 {
		t.Fatal("submission must wait for confirmation")
	}

	res = runTurn(t, uc, "s1", "yes")
	if ins.submitCalls != 1 {
		t.Fatalf("submitCalls = %d, want 1", ins.submitCalls)
	}
	sub := ins.lastSubmission
	if sub == nil {
		t.Fatal("no submission captured")
	}
	if sub.PolicyID != "POL-1002" || sub.Vehicle != "2021 Honda Civic" ||
		sub.DamageDescription != "Rear bumper dented in a parking lot" {
		t.Errorf("submission = %+v", sub)
	}
	if len(res.Messages) != 1 || res.Messages[0].Text != "Claim submitted successfully. New claim ID: CLM99" {
		t.Errorf("messages = %+v", res.Messages)
	}
	if _, ok := res.Cards[orchestrator.CardClaimSubmitted]; !ok {
		t.Error("expected claim_submitted card")
	}
	if res.State.PolicyID != "POL-1002" {
		t.Errorf("state policy id = %q", res.State.PolicyID)
	}
}

func TestSubmitClaimShortDamageReprompts(t *testing.T) {
	uc := newTestUseCase(&mockInsuranceRepo{}, &mockKnowledgeRepo{})

	runTurn(t, uc, "s1", "file a claim")
	runTurn(t, uc, "s1", "POL1")
	runTurn(t, uc, "s1", "2019 Mazda 3")

	res := runTurn(t, uc, "s1", "dented")
	if len(res.Messages) != 1 || res.Messages[0].Text != "Please describe the damage (at least 10 characters)." {
		t.Fatalf("messages = %+v", res.Messages)
	}
	if res.State.PendingConfirmation {
		t.Fatal("short description must not complete the flow")
	}

	res = runTurn(t, uc, "s1", "dented rear bumper and broken tail light")
	if len(res.Actions) != 1 {
		t.Fatalf("expected confirm after a valid description, got %+v", res.Messages)
	}
}

func TestSubmitClaimSupersedesStaleFlow(t *testing.T) {
	ins := &mockInsuranceRepo{}
	uc := newTestUseCase(ins, &mockKnowledgeRepo{})

	// Leave a claim-status flow behind with a scrubbed identifier.
	runTurn(t, uc, "s1", "I need help with a claim")
	runTurn(t, uc, "s1", "somewords")

	// A fresh submission resets the leftovers and starts its own flow.
	res := runTurn(t, uc, "s1", "I want to file a claim")
	if len(res.Messages) != 1 || res.Messages[0].Text != "Please provide your policy_id." {
		t.Fatalf("messages = %+v", res.Messages)
	}
	if res.State.PendingConfirmation {
		t.Error("a fresh submission must not inherit pending state")
	}
	if ins.getClaimCalls != 0 {
		t.Fatalf("nothing should have dispatched, got %d calls", ins.getClaimCalls)
	}
}

func TestSubmissionRepromptedWhileConfirmationPending(t *testing.T) {
	// A live confirmation always wins over new-topic keywords; the
	// pending payload is re-emitted untouched.
	ins := &mockInsuranceRepo{}
	uc := newTestUseCase(ins, &mockKnowledgeRepo{})

	runTurn(t, uc, "s1", "check claim 98765")
	res := runTurn(t, uc, "s1", "actually I want to file a new claim")

	if len(res.Messages) != 1 || res.Messages[0].Text != msgReplyYesNo {
		t.Fatalf("messages = %+v", res.Messages)
	}
	if len(res.Actions) != 1 || res.Actions[0].Payload.GetClaim == nil {
		t.Fatalf("actions = %+v", res.Actions)
	}
	if !res.State.PendingConfirmation {
		t.Error("the original confirmation must remain pending")
	}
}

func TestCancelDuringSlotFlow(t *testing.T) {
	uc := newTestUseCase(&mockInsuranceRepo{}, &mockKnowledgeRepo{})

	runTurn(t, uc, "s1", "file a claim")
	res := runTurn(t, uc, "s1", "cancel")
	if len(res.Messages) != 1 || res.Messages[0].Text != msgCancelled {
		t.Fatalf("messages = %+v", res.Messages)
	}

	// The flow is gone; an unrelated message falls through normally.
	res = runTurn(t, uc, "s1", "good morning")
	if len(res.Messages) != 1 || res.Messages[0].Text != msgFallback {
		t.Fatalf("messages = %+v", res.Messages)
	}
}

func TestPolicyLookupFlow(t *testing.T) {
	ins := &mockInsuranceRepo{
		policy: model.Policy{
			PolicyID:          "POL-1002",
			UserID:            "USER-002",
			Plan:              "comprehensive",
			Deductible:        500,
			CollisionCoverage: 50000,
			Premium:           120,
		},
	}
	uc := newTestUseCase(ins, &mockKnowledgeRepo{})

	res := runTurn(t, uc, "s1", "policy details for USER-001")
	if len(res.Messages) != 1 || res.Messages[0].Text != "Please provide your user ID (e.g. USER-002)." {
		t.Fatalf("turn 1 messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "USER-002")
	if len(res.Actions) != 1 || res.Actions[0].Summary != "Look up policy details for user USER-002?" {
		t.Fatalf("actions = %+v", res.Actions)
	}

	res = runTurn(t, uc, "s1", "confirm")
	if ins.policyCalls != 1 {
		t.Fatalf("policyCalls = %d, want 1", ins.policyCalls)
	}
	wantMsg := "Policy POL-1002 (comprehensive plan): deductible $500.00, collision coverage $50000.00, premium $120.00."
	if len(res.Messages) != 1 || res.Messages[0].Text != wantMsg {
		t.Errorf("messages = %+v", res.Messages)
	}
	if _, ok := res.Cards[orchestrator.CardPolicyDetails]; !ok {
		t.Error("expected policy_details card")
	}
	if res.State.PolicyID != "POL-1002" {
		t.Errorf("state policy id = %q", res.State.PolicyID)
	}
}

func TestPremiumQuoteFlow(t *testing.T) {
	ins := &mockInsuranceRepo{
		quote: model.PremiumQuote{PolicyID: "POL7", CurrentPremium: 120, NewPremium: 180},
	}
	uc := newTestUseCase(ins, &mockKnowledgeRepo{})

	res := runTurn(t, uc, "s1", "I'd like a premium quote")
	if len(res.Messages) != 1 || res.Messages[0].Text != "Please provide your policy_id." {
		t.Fatalf("turn 1 messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "POL7")
	if len(res.Messages) != 1 || res.Messages[0].Text != "What is your current coverage amount?" {
		t.Fatalf("turn 2 messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "$50,000")
	if len(res.Messages) != 1 || res.Messages[0].Text != "What new coverage amount would you like a quote for?" {
		t.Fatalf("turn 3 messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "80k")
	if len(res.Actions) != 1 {
		t.Fatalf("turn 4 actions = %+v, messages = %+v", res.Actions, res.Messages)
	}
	if res.Actions[0].Summary != "Quote premium for policy POL7 changing coverage from $50000 to $80000?" {
		t.Errorf("summary = %q", res.Actions[0].Summary)
	}

	res = runTurn(t, uc, "s1", "yes")
	if ins.premiumCalls != 1 {
		t.Fatalf("premiumCalls = %d, want 1", ins.premiumCalls)
	}
	if ins.lastPremium.PolicyID != "POL7" || ins.lastPremium.CurrentCoverage != 50000 || ins.lastPremium.NewCoverage != 80000 {
		t.Errorf("premium options = %+v", ins.lastPremium)
	}
	wantMsg := "Your premium would change from $120.00 to $180.00 on policy POL7."
	if len(res.Messages) != 1 || res.Messages[0].Text != wantMsg {
		t.Errorf("messages = %+v", res.Messages)
	}
	if _, ok := res.Cards[orchestrator.CardPremiumQuote]; !ok {
		t.Error("expected premium_quote card")
	}
}

func TestPremiumPreconditionRejectsLocally(t *testing.T) {
	ins := &mockInsuranceRepo{}
	uc := newTestUseCase(ins, &mockKnowledgeRepo{})

	runTurn(t, uc, "s1", "I'd like a premium quote")
	runTurn(t, uc, "s1", "POL7")
	runTurn(t, uc, "s1", "50000")
	runTurn(t, uc, "s1", "40000")

	res := runTurn(t, uc, "s1", "yes")
	if ins.premiumCalls != 0 {
		t.Fatalf("precondition failure must not reach the network, got %d calls", ins.premiumCalls)
	}
	if len(res.Messages) != 1 || res.Messages[0].Text != msgPremiumTooLow {
		t.Errorf("messages = %+v", res.Messages)
	}
	if res.Messages[0].From != orchestrator.FromAssistant {
		t.Errorf("precondition message from = %q, want assistant", res.Messages[0].From)
	}
	if res.State.PendingConfirmation {
		t.Error("pending state must clear after the attempted dispatch")
	}
}

func TestPremiumBadAmountReprompts(t *testing.T) {
	uc := newTestUseCase(&mockInsuranceRepo{}, &mockKnowledgeRepo{})

	runTurn(t, uc, "s1", "I'd like a premium quote")
	runTurn(t, uc, "s1", "POL7")

	res := runTurn(t, uc, "s1", "quite a lot")
	if len(res.Messages) != 1 || res.Messages[0].Text != msgAmountRetry {
		t.Fatalf("messages = %+v", res.Messages)
	}

	res = runTurn(t, uc, "s1", "50000")
	if len(res.Messages) != 1 || res.Messages[0].Text != "What new coverage amount would you like a quote for?" {
		t.Fatalf("messages = %+v", res.Messages)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50000", 50000, true},
		{"$50,000", 50000, true},
		{"80k", 80000, true},
		{"1.5K", 1500, true},
		{"about 120.50 dollars", 120.50, true},
		{"quite a lot", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, ok := parseAmount(c.in)
			if ok != c.ok || got != c.want {
				t.Errorf("parseAmount(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
			}
		})
	}
}
