package usecase

import (
	"context"
	"fmt"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
	"insurance-orchestrator/internal/router"
	"insurance-orchestrator/pkg/identifier"
)

// handleAction is the action branch: confirmation gate first, then the
// slot flow for the classified operation.
func (uc *implUseCase) handleAction(ctx context.Context, sess *model.Session, intent router.Intent, message string, res *orchestrator.TurnResult) {
	if sess.PendingAction != nil {
		uc.resolveConfirmation(ctx, sess, message, res)
		return
	}

	switch intent {
	case router.IntentSubmitClaim:
		sess.ActiveOp = model.OpSubmitClaim
		uc.collectSlots(ctx, sess, message, res)
	case router.IntentPolicyLookup:
		sess.ActiveOp = model.OpGetPolicy
		uc.collectSlots(ctx, sess, message, res)
	case router.IntentCalculatePremium:
		sess.ActiveOp = model.OpCalculatePremium
		uc.collectSlots(ctx, sess, message, res)
	default:
		uc.claimStatusFlow(ctx, sess, message, res)
	}
}

// resolveConfirmation applies the yes/no gate to the pending action.
// The pending payload is cleared unconditionally once a dispatch is
// attempted; any other reply re-emits the prompt with the payload
// untouched.
func (uc *implUseCase) resolveConfirmation(ctx context.Context, sess *model.Session, message string, res *orchestrator.TurnResult) {
	switch {
	case router.IsAffirmative(message):
		pending := *sess.PendingAction
		sess.ClearFlow()
		uc.dispatch(ctx, sess, pending.Operation, res)
	case router.IsNegative(message):
		sess.ClearFlow()
		res.Messages = append(res.Messages, assistantMsg(msgCancelled))
	default:
		res.Messages = append(res.Messages, assistantMsg(msgReplyYesNo))
		res.Actions = append(res.Actions, orchestrator.Action{
			Type:    orchestrator.ActionTypeConfirm,
			ID:      confirmID(sess.ID),
			Summary: sess.PendingAction.Summary,
			Payload: sess.PendingAction.Operation,
		})
	}
}

// claimStatusFlow resolves a claim identifier from the utterance (or a
// previously awaited reply) and stages the status lookup for
// confirmation.
func (uc *implUseCase) claimStatusFlow(ctx context.Context, sess *model.Session, message string, res *orchestrator.TurnResult) {
	sess.ActiveOp = model.OpGetClaim

	if sess.Awaiting == slotClaimID {
		// Prefer a digit-bearing token ("it's 98765" → 98765); fall back
		// to the first token so the validator can explain a bad reply.
		tok := identifier.ClaimID(message)
		if tok == "" {
			tok = identifier.FirstToken(message)
		}
		if tok != "" {
			sess.ClaimID = tok
			sess.Awaiting = ""
		}
	} else if sess.ClaimID == "" {
		sess.ClaimID = identifier.ClaimID(message)
	}

	if !identifier.Valid(sess.ClaimID) {
		if sess.ClaimID == "" {
			sess.Awaiting = slotClaimID
			res.Messages = append(res.Messages, assistantMsg(msgAskClaimID))
		}
		// A non-empty invalid capture falls through to the validator,
		// which scrubs it and explains the format.
		return
	}

	op := model.Operation{
		Kind:     model.OpGetClaim,
		GetClaim: &model.GetClaimOp{ClaimID: sess.ClaimID},
	}
	uc.emitConfirm(sess, op, fmt.Sprintf("Check status for claim ID %s?", sess.ClaimID), res)
}

// emitConfirm stores the assembled operation as the pending action and
// surfaces the confirm prompt.
func (uc *implUseCase) emitConfirm(sess *model.Session, op model.Operation, summary string, res *orchestrator.TurnResult) {
	sess.PendingAction = &model.PendingAction{Operation: op, Summary: summary}
	sess.Awaiting = ""
	res.Actions = append(res.Actions, orchestrator.Action{
		Type:    orchestrator.ActionTypeConfirm,
		ID:      confirmID(sess.ID),
		Summary: summary,
		Payload: op,
	})
}

func confirmID(sessionID string) string {
	return "confirm-" + sessionID
}
