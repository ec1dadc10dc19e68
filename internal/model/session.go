package model

import "time"

// Session is the per-conversation state. Created lazily on the first
// message for a session ID and mutated only by the turn orchestrator,
// one turn at a time.
type Session struct {
	ID string `json:"id"`

	// PendingAction is set iff the confirmation gate is awaiting a
	// yes/no for a fully assembled operation. At most one per session.
	PendingAction *PendingAction `json:"pending_action,omitempty"`

	// Slots holds fields collected for the in-progress operation.
	// Cleared when the operation completes, is cancelled, or a new
	// operation starts.
	Slots map[string]string `json:"slots,omitempty"`

	// Awaiting names the slot the engine prompted for last turn; the
	// next utterance is consumed as that slot's value.
	Awaiting string `json:"awaiting,omitempty"`

	// ActiveOp is the operation the slot engine is collecting for.
	ActiveOp OperationKind `json:"active_op,omitempty"`

	LastIntent string `json:"last_intent,omitempty"`
	ClaimID    string `json:"claim_id,omitempty"`
	PolicyID   string `json:"policy_id,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns an empty session for the given ID.
func NewSession(id string) Session {
	return Session{
		ID:    id,
		Slots: make(map[string]string),
	}
}

// Clone returns a deep copy so store callers can mutate freely without
// aliasing the cached value's slot map or pending action.
func (s Session) Clone() Session {
	out := s
	out.Slots = make(map[string]string, len(s.Slots))
	for k, v := range s.Slots {
		out.Slots[k] = v
	}
	if s.PendingAction != nil {
		pa := *s.PendingAction
		out.PendingAction = &pa
	}
	return out
}

// ClearFlow drops all in-progress operation state: pending action,
// collected slots, and the awaiting marker. Used on cancel, after an
// attempted dispatch, and when a new operation supersedes an old one.
func (s *Session) ClearFlow() {
	s.PendingAction = nil
	s.Slots = make(map[string]string)
	s.Awaiting = ""
	s.ActiveOp = ""
}

// PendingAction is an assembled operation awaiting explicit user
// approval. The payload must survive intermediate turns verbatim.
type PendingAction struct {
	Operation Operation `json:"operation"`
	Summary   string    `json:"summary"`
}

// Scope carries per-request identity through the layers.
type Scope struct {
	SessionID string
	UserRole  string // "user" or "admin"
}
