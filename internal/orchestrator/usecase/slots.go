package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
	"insurance-orchestrator/internal/router"
	"insurance-orchestrator/pkg/identifier"
)

// slotField is one required field of an interactive operation. capture
// turns the raw reply into the stored value; a false return re-prompts
// with retry.
type slotField struct {
	name    string
	prompt  string
	retry   string
	capture func(text string) (string, bool)
}

func captureFirstToken(text string) (string, bool) {
	tok := identifier.FirstToken(text)
	return tok, tok != ""
}

func captureText(text string) (string, bool) {
	t := strings.TrimSpace(text)
	return t, t != ""
}

func captureDamage(text string) (string, bool) {
	t := strings.TrimSpace(text)
	return t, len(t) >= 10
}

func captureAmount(text string) (string, bool) {
	v, ok := parseAmount(text)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', -1, 64), true
}

// slotSchemas lists each operation's required fields in collection
// order. The first missing field is prompted for; order is fixed.
var slotSchemas = map[model.OperationKind][]slotField{
	model.OpSubmitClaim: {
		{
			name:    slotPolicyID,
			prompt:  "Please provide your policy_id.",
			capture: captureFirstToken,
		},
		{
			name:    slotVehicle,
			prompt:  "Please provide the vehicle (make/model/year).",
			capture: captureText,
		},
		{
			name:    slotDamageDescription,
			prompt:  "Please describe the damage (at least 10 characters).",
			capture: captureDamage,
		},
	},
	model.OpGetPolicy: {
		{
			name:    slotUserID,
			prompt:  "Please provide your user ID (e.g. USER-002).",
			capture: captureFirstToken,
		},
	},
	model.OpCalculatePremium: {
		{
			name:    slotPolicyID,
			prompt:  "Please provide your policy_id.",
			capture: captureFirstToken,
		},
		{
			name:    slotCurrentCoverage,
			prompt:  "What is your current coverage amount?",
			retry:   msgAmountRetry,
			capture: captureAmount,
		},
		{
			name:    slotNewCoverage,
			prompt:  "What new coverage amount would you like a quote for?",
			retry:   msgAmountRetry,
			capture: captureAmount,
		},
	},
}

// continueSlots handles a turn that arrives while a slot prompt is
// outstanding. A bare rejection token cancels the flow; everything else
// is consumed as the awaited field.
func (uc *implUseCase) continueSlots(ctx context.Context, sess *model.Session, message string, res *orchestrator.TurnResult) {
	if router.IsNegative(message) {
		sess.ClearFlow()
		res.Messages = append(res.Messages, assistantMsg(msgCancelled))
		return
	}
	if sess.ActiveOp == model.OpGetClaim {
		uc.claimStatusFlow(ctx, sess, message, res)
		return
	}
	uc.collectSlots(ctx, sess, message, res)
}

// collectSlots consumes an awaited reply if one is expected, then either
// prompts for the next missing field or assembles the operation and
// hands it to the confirmation gate.
func (uc *implUseCase) collectSlots(ctx context.Context, sess *model.Session, message string, res *orchestrator.TurnResult) {
	fields, ok := slotSchemas[sess.ActiveOp]
	if !ok {
		uc.l.Errorf(ctx, "collectSlots: no slot schema for operation %q", sess.ActiveOp)
		res.Messages = append(res.Messages, assistantMsg(msgUnsupportedOp))
		sess.ClearFlow()
		return
	}

	if sess.Awaiting != "" {
		for _, f := range fields {
			if f.name != sess.Awaiting {
				continue
			}
			val, ok := f.capture(message)
			if !ok {
				retry := f.retry
				if retry == "" {
					retry = f.prompt
				}
				res.Messages = append(res.Messages, assistantMsg(retry))
				return
			}
			sess.Slots[f.name] = val
			sess.Awaiting = ""
			break
		}
	}

	for _, f := range fields {
		if sess.Slots[f.name] == "" {
			sess.Awaiting = f.name
			res.Messages = append(res.Messages, assistantMsg(f.prompt))
			return
		}
	}

	op, summary := assembleOperation(sess.ActiveOp, sess.Slots)
	uc.emitConfirm(sess, op, summary, res)
}

// assembleOperation builds the operation payload and its deterministic
// confirmation summary from collected slots. Callers guarantee the
// schema is complete.
func assembleOperation(kind model.OperationKind, slots map[string]string) (model.Operation, string) {
	switch kind {
	case model.OpSubmitClaim:
		body := model.ClaimSubmission{
			PolicyID:          slots[slotPolicyID],
			Vehicle:           slots[slotVehicle],
			DamageDescription: slots[slotDamageDescription],
			Photos:            []string{},
		}
		summary := fmt.Sprintf("Submit claim for policy %s on vehicle '%s' with description '%s'?",
			body.PolicyID, body.Vehicle, body.DamageDescription)
		return model.Operation{Kind: kind, SubmitClaim: &model.SubmitClaimOp{Body: body}}, summary

	case model.OpGetPolicy:
		userID := slots[slotUserID]
		return model.Operation{Kind: kind, GetPolicy: &model.GetPolicyOp{UserID: userID}},
			fmt.Sprintf("Look up policy details for user %s?", userID)

	case model.OpCalculatePremium:
		cur, _ := strconv.ParseFloat(slots[slotCurrentCoverage], 64)
		next, _ := strconv.ParseFloat(slots[slotNewCoverage], 64)
		op := &model.CalculatePremiumOp{
			PolicyID:        slots[slotPolicyID],
			CurrentCoverage: cur,
			NewCoverage:     next,
		}
		summary := fmt.Sprintf("Quote premium for policy %s changing coverage from $%s to $%s?",
			op.PolicyID, slots[slotCurrentCoverage], slots[slotNewCoverage])
		return model.Operation{Kind: kind, CalculatePremium: op}, summary
	}
	return model.Operation{Kind: kind}, ""
}

var amountRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?[kK]?`)

// parseAmount reads the first monetary amount in text, tolerating "$",
// thousands separators, and a k-suffix ("80k" → 80000).
func parseAmount(text string) (float64, bool) {
	clean := strings.NewReplacer("$", "", ",", "").Replace(text)
	m := amountRe.FindString(clean)
	if m == "" {
		return 0, false
	}
	mult := 1.0
	if strings.HasSuffix(m, "k") || strings.HasSuffix(m, "K") {
		mult = 1000
		m = m[:len(m)-1]
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v * mult, true
}
