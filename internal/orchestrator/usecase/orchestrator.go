package usecase

import (
	"context"
	"fmt"
	"strings"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
	"insurance-orchestrator/internal/router"
	"insurance-orchestrator/pkg/identifier"
)

// ProcessTurn runs one conversation turn. Turns for the same session are
// serialized through the store's per-key lock; the session is loaded,
// mutated by exactly one handler, validated, and saved before the result
// is returned.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input orchestrator.TurnInput) (orchestrator.TurnResult, error) {
	if sc.SessionID == "" {
		return orchestrator.TurnResult{}, orchestrator.ErrEmptySessionID
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return orchestrator.TurnResult{}, orchestrator.ErrEmptyMessage
	}

	unlock := uc.store.Lock(sc.SessionID)
	defer unlock()

	sess, err := uc.store.Get(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "ProcessTurn: failed to load session %s: %v", sc.SessionID, err)
		return orchestrator.TurnResult{}, fmt.Errorf("failed to load session: %w", err)
	}

	res := orchestrator.TurnResult{Cards: map[string]any{}}

	if sess.Awaiting != "" && sess.PendingAction == nil {
		// Mid slot collection: the reply is consumed as the awaited
		// field, never re-classified.
		uc.l.Infof(ctx, "ProcessTurn: session=%s consuming reply for slot %q", sc.SessionID, sess.Awaiting)
		uc.continueSlots(ctx, &sess, message, &res)
	} else {
		out := uc.router.Classify(ctx, message, sess)
		sess.LastIntent = string(out.Intent)
		if out.ResetPending {
			sess.ClearFlow()
		}

		switch out.Route {
		case router.RouteKnowledge:
			uc.handleKnowledge(ctx, message, &res)
		case router.RouteAction:
			uc.handleAction(ctx, &sess, out.Intent, message, &res)
		default:
			res.Messages = append(res.Messages, assistantMsg(msgFallback))
		}
	}

	uc.validate(ctx, &sess, &res)

	if err := uc.store.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "ProcessTurn: failed to save session %s: %v", sc.SessionID, err)
		return orchestrator.TurnResult{}, fmt.Errorf("failed to save session: %w", err)
	}

	res.State = snapshot(sess)
	return res, nil
}

// validate discards a collected claim identifier that fails the shared
// identifier rule, protecting against stray words captured as IDs.
func (uc *implUseCase) validate(ctx context.Context, sess *model.Session, res *orchestrator.TurnResult) {
	if sess.ClaimID == "" || identifier.Valid(sess.ClaimID) {
		return
	}
	uc.l.Warnf(ctx, "validate: discarding claim id %q", sess.ClaimID)
	sess.ClaimID = ""
	res.Messages = append(res.Messages, assistantMsg(msgInvalidClaimID))
}

func snapshot(sess model.Session) orchestrator.SessionSnapshot {
	return orchestrator.SessionSnapshot{
		PendingConfirmation: sess.PendingAction != nil,
		ClaimID:             sess.ClaimID,
		PolicyID:            sess.PolicyID,
		LastIntent:          sess.LastIntent,
	}
}

func assistantMsg(text string) orchestrator.Message {
	return orchestrator.Message{From: orchestrator.FromAssistant, Text: text}
}

func systemMsg(text string) orchestrator.Message {
	return orchestrator.Message{From: orchestrator.FromSystem, Text: text}
}
