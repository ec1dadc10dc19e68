package usecase

import (
	"context"
	"fmt"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
	"insurance-orchestrator/internal/orchestrator/repository"
)

// dispatch executes a confirmed operation against the insurance backend
// and renders the outcome. Failures never abort the turn; they surface
// as system messages and the cleared pending state forces the user to
// restart the flow rather than silently retrying.
func (uc *implUseCase) dispatch(ctx context.Context, sess *model.Session, op model.Operation, res *orchestrator.TurnResult) {
	uc.l.Infof(ctx, "dispatch: session=%s op=%s", sess.ID, op.Kind)

	switch op.Kind {
	case model.OpGetClaim:
		claim, err := uc.insuranceRepo.GetClaim(ctx, op.GetClaim.ClaimID)
		if err != nil {
			uc.reportAPIError(ctx, res, err)
			return
		}
		res.Messages = append(res.Messages, assistantMsg(
			fmt.Sprintf("Claim %s status: %s", claim.ClaimID, claim.Status)))
		res.Cards[orchestrator.CardClaimStatus] = claim
		sess.ClaimID = op.GetClaim.ClaimID

	case model.OpSubmitClaim:
		body := op.SubmitClaim.Body
		claim, err := uc.insuranceRepo.SubmitClaim(ctx, body)
		if err != nil {
			uc.reportAPIError(ctx, res, err)
			return
		}
		res.Messages = append(res.Messages, assistantMsg(
			fmt.Sprintf("Claim submitted successfully. New claim ID: %s", claim.ClaimID)))
		res.Cards[orchestrator.CardClaimSubmitted] = claim
		sess.PolicyID = body.PolicyID

	case model.OpGetPolicy:
		policy, err := uc.insuranceRepo.GetPolicy(ctx, op.GetPolicy.UserID)
		if err != nil {
			uc.reportAPIError(ctx, res, err)
			return
		}
		res.Messages = append(res.Messages, assistantMsg(fmt.Sprintf(
			"Policy %s (%s plan): deductible $%.2f, collision coverage $%.2f, premium $%.2f.",
			policy.PolicyID, policy.Plan, policy.Deductible, policy.CollisionCoverage, policy.Premium)))
		res.Cards[orchestrator.CardPolicyDetails] = policy
		sess.PolicyID = policy.PolicyID

	case model.OpCalculatePremium:
		p := op.CalculatePremium
		// Local precondition, checked before any network call.
		if p.NewCoverage <= p.CurrentCoverage {
			res.Messages = append(res.Messages, assistantMsg(msgPremiumTooLow))
			return
		}
		quote, err := uc.insuranceRepo.CalculatePremium(ctx, repository.PremiumOptions{
			PolicyID:        p.PolicyID,
			CurrentCoverage: p.CurrentCoverage,
			NewCoverage:     p.NewCoverage,
		})
		if err != nil {
			uc.reportAPIError(ctx, res, err)
			return
		}
		res.Messages = append(res.Messages, assistantMsg(fmt.Sprintf(
			"Your premium would change from $%.2f to $%.2f on policy %s.",
			quote.CurrentPremium, quote.NewPremium, quote.PolicyID)))
		res.Cards[orchestrator.CardPremiumQuote] = quote
		sess.PolicyID = p.PolicyID

	default:
		res.Messages = append(res.Messages, assistantMsg(msgUnsupportedOp))
	}
}

func (uc *implUseCase) reportAPIError(ctx context.Context, res *orchestrator.TurnResult, err error) {
	uc.l.Errorf(ctx, "dispatch: insurance API call failed: %v", err)
	res.Messages = append(res.Messages, systemMsg("API error: "+truncate(err.Error(), maxUpstreamDetail)))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
