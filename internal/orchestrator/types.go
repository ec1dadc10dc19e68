package orchestrator

import "insurance-orchestrator/internal/model"

// TurnInput is one raw user utterance.
type TurnInput struct {
	Message string
}

// Message senders. Assistant text is conversational; system text carries
// operational detail (API failures, degraded answers).
const (
	FromAssistant = "assistant"
	FromSystem    = "system"
)

// Message is one line of turn output.
type Message struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// ActionTypeConfirm is the only suggested-action type: an approve/cancel
// prompt for a fully assembled operation.
const ActionTypeConfirm = "confirm"

// Action is a suggested confirmation the UI should render. Payload is
// the exact operation that will execute on approval.
type Action struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Summary string          `json:"summary"`
	Payload model.Operation `json:"payload"`
}

// Card names for structured UI rendering.
const (
	CardClaimStatus    = "claim_status"
	CardClaimSubmitted = "claim_submitted"
	CardPolicyDetails  = "policy_details"
	CardPremiumQuote   = "premium_quote"
	CardKnowledgeBase  = "knowledge_base"
)

// SessionSnapshot is the post-turn session state echoed to the caller.
type SessionSnapshot struct {
	PendingConfirmation bool   `json:"pending_confirmation"`
	ClaimID             string `json:"claim_id,omitempty"`
	PolicyID            string `json:"policy_id,omitempty"`
	LastIntent          string `json:"last_intent,omitempty"`
}

// TurnResult is the complete output of one turn.
type TurnResult struct {
	Messages []Message      `json:"messages"`
	Actions  []Action       `json:"actions"`
	Cards    map[string]any `json:"cards"`
	State    SessionSnapshot `json:"state"`
}

// Document is a knowledge base entry accepted for ingestion.
type Document struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
