package router

import (
	"context"
	"strings"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/pkg/identifier"
)

// Classify determines user intent from the message and the current
// session. First rule wins:
//
//  1. pending confirmation, or a bare yes/no token → action continuation
//  2. submission trigger (submit/file + claim) → SubmitClaim, reset stale pending
//  3. short digit-bearing token → identifier-bearing action request
//  4. knowledge keyword → knowledge lookup
//  5. "claim" or "premium" → action request
//  6. fallback
func (r *HeuristicRouter) Classify(ctx context.Context, message string, sess model.Session) RouterOutput {
	lower := strings.ToLower(strings.TrimSpace(message))

	// Rule 1: an in-flight confirmation, or the utterance itself is a
	// bare approval/rejection, always continues the action flow.
	if sess.PendingAction != nil || IsAffirmative(lower) || IsNegative(lower) {
		out := RouterOutput{
			Intent:    continuationIntent(sess),
			Route:     RouteAction,
			Reasoning: ReasonPendingConfirmation,
		}
		r.log(ctx, message, out)
		return out
	}

	// Rule 2: a new submission supersedes any prior unconfirmed action.
	if (strings.Contains(lower, "submit") || strings.Contains(lower, "file")) && strings.Contains(lower, "claim") {
		out := RouterOutput{
			Intent:       IntentSubmitClaim,
			Route:        RouteAction,
			Reasoning:    ReasonSubmissionTrigger,
			ResetPending: true,
		}
		r.log(ctx, message, out)
		return out
	}

	// Rule 3: a short alphanumeric token with a digit reads as a
	// claim/policy reference. Known false-positive surface for numeric
	// amounts inside knowledge questions; the ordering stays as is.
	if identifier.HasActionToken(message) {
		out := RouterOutput{
			Intent:    tokenIntent(lower),
			Route:     RouteAction,
			Reasoning: ReasonActionToken,
		}
		r.log(ctx, message, out)
		return out
	}

	// Rule 4: domain-knowledge keywords.
	for _, kw := range knowledgeKeywords {
		if strings.Contains(lower, kw) {
			out := RouterOutput{
				Intent:    IntentKnowledgeLookup,
				Route:     RouteKnowledge,
				Reasoning: ReasonKnowledgeKeyword,
			}
			r.log(ctx, message, out)
			return out
		}
	}

	// Rule 5: action keywords without an identifier.
	if strings.Contains(lower, "claim") || strings.Contains(lower, "premium") {
		out := RouterOutput{
			Intent:    tokenIntent(lower),
			Route:     RouteAction,
			Reasoning: ReasonActionKeyword,
		}
		r.log(ctx, message, out)
		return out
	}

	out := RouterOutput{
		Intent:    IntentFallback,
		Route:     RouteFallback,
		Reasoning: ReasonFallback,
	}
	r.log(ctx, message, out)
	return out
}

func (r *HeuristicRouter) log(ctx context.Context, message string, out RouterOutput) {
	r.l.Debugf(ctx, "%s: %q classified as %s (%s)", LogPrefixClassify, message, out.Intent, out.Reasoning)
}

// continuationIntent keeps the action flow on the operation already in
// progress when one exists.
func continuationIntent(sess model.Session) Intent {
	kind := sess.ActiveOp
	if sess.PendingAction != nil {
		kind = sess.PendingAction.Operation.Kind
	}
	switch kind {
	case model.OpSubmitClaim:
		return IntentSubmitClaim
	case model.OpGetPolicy:
		return IntentPolicyLookup
	case model.OpCalculatePremium:
		return IntentCalculatePremium
	default:
		return IntentClaimStatus
	}
}

// tokenIntent refines an action request by keyword.
func tokenIntent(lower string) Intent {
	switch {
	case strings.Contains(lower, "premium") || strings.Contains(lower, "coverage"):
		return IntentCalculatePremium
	case strings.Contains(lower, "policy") || strings.Contains(lower, "user"):
		return IntentPolicyLookup
	default:
		return IntentClaimStatus
	}
}

// IsAffirmative reports whether text is a bare approval token.
func IsAffirmative(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "y", "approve", "confirm", "ok":
		return true
	}
	return false
}

// IsNegative reports whether text is a bare rejection token.
func IsNegative(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "no", "n", "cancel", "stop":
		return true
	}
	return false
}
