package model

import (
	"encoding/json"
	"fmt"
)

// OperationKind tags the Operation variant.
type OperationKind string

const (
	OpGetClaim         OperationKind = "GetClaim"
	OpSubmitClaim      OperationKind = "SubmitClaim"
	OpGetPolicy        OperationKind = "GetPolicy"
	OpCalculatePremium OperationKind = "CalculatePremium"
)

// Operation is a tagged variant over the fixed operation set. Exactly
// one of the pointer fields matching Kind is non-nil.
type Operation struct {
	Kind             OperationKind
	GetClaim         *GetClaimOp
	SubmitClaim      *SubmitClaimOp
	GetPolicy        *GetPolicyOp
	CalculatePremium *CalculatePremiumOp
}

// GetClaimOp looks up a claim's status.
type GetClaimOp struct {
	ClaimID string `json:"claim_id"`
}

// SubmitClaimOp files a new claim.
type SubmitClaimOp struct {
	Body ClaimSubmission `json:"body"`
}

// ClaimSubmission is the collected body of a claim filing.
type ClaimSubmission struct {
	PolicyID          string   `json:"policy_id"`
	Vehicle           string   `json:"vehicle"`
	DamageDescription string   `json:"damage_description"`
	Photos            []string `json:"photos"`
}

// GetPolicyOp fetches policy details for a user.
type GetPolicyOp struct {
	UserID string `json:"user_id"`
}

// CalculatePremiumOp quotes a coverage change.
type CalculatePremiumOp struct {
	PolicyID        string  `json:"policy_id"`
	CurrentCoverage float64 `json:"current_coverage"`
	NewCoverage     float64 `json:"new_coverage"`
}

// operationWire is the flat JSON shape: the "op" tag plus the variant's
// fields inlined, e.g. {"op":"GetClaim","claim_id":"98765"}.
type operationWire struct {
	Op OperationKind `json:"op"`

	ClaimID string `json:"claim_id,omitempty"`

	Body *ClaimSubmission `json:"body,omitempty"`

	UserID string `json:"user_id,omitempty"`

	PolicyID        string   `json:"policy_id,omitempty"`
	CurrentCoverage *float64 `json:"current_coverage,omitempty"`
	NewCoverage     *float64 `json:"new_coverage,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (o Operation) MarshalJSON() ([]byte, error) {
	w := operationWire{Op: o.Kind}
	switch o.Kind {
	case OpGetClaim:
		if o.GetClaim != nil {
			w.ClaimID = o.GetClaim.ClaimID
		}
	case OpSubmitClaim:
		if o.SubmitClaim != nil {
			body := o.SubmitClaim.Body
			w.Body = &body
		}
	case OpGetPolicy:
		if o.GetPolicy != nil {
			w.UserID = o.GetPolicy.UserID
		}
	case OpCalculatePremium:
		if o.CalculatePremium != nil {
			w.PolicyID = o.CalculatePremium.PolicyID
			w.CurrentCoverage = &o.CalculatePremium.CurrentCoverage
			w.NewCoverage = &o.CalculatePremium.NewCoverage
		}
	default:
		return nil, fmt.Errorf("unknown operation kind %q", o.Kind)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var w operationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*o = Operation{Kind: w.Op}
	switch w.Op {
	case OpGetClaim:
		o.GetClaim = &GetClaimOp{ClaimID: w.ClaimID}
	case OpSubmitClaim:
		body := ClaimSubmission{}
		if w.Body != nil {
			body = *w.Body
		}
		o.SubmitClaim = &SubmitClaimOp{Body: body}
	case OpGetPolicy:
		o.GetPolicy = &GetPolicyOp{UserID: w.UserID}
	case OpCalculatePremium:
		op := &CalculatePremiumOp{PolicyID: w.PolicyID}
		if w.CurrentCoverage != nil {
			op.CurrentCoverage = *w.CurrentCoverage
		}
		if w.NewCoverage != nil {
			op.NewCoverage = *w.NewCoverage
		}
		o.CalculatePremium = op
	default:
		return fmt.Errorf("unknown operation kind %q", w.Op)
	}
	return nil
}
