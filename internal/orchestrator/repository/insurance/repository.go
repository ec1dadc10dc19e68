package insurance

import (
	"context"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator/repository"
	"insurance-orchestrator/pkg/insurance"
	pkgLog "insurance-orchestrator/pkg/log"
)

type implRepository struct {
	l      pkgLog.Logger
	client *insurance.Client
}

var _ repository.InsuranceRepository = (*implRepository)(nil)

// New creates an InsuranceRepository backed by the insurance HTTP client.
func New(l pkgLog.Logger, client *insurance.Client) *implRepository {
	return &implRepository{l: l, client: client}
}

func (r *implRepository) GetClaim(ctx context.Context, claimID string) (model.Claim, error) {
	claim, err := r.client.GetClaim(ctx, claimID)
	if err != nil {
		return model.Claim{}, err
	}
	return toModelClaim(claim), nil
}

func (r *implRepository) SubmitClaim(ctx context.Context, sub model.ClaimSubmission) (model.Claim, error) {
	claim, err := r.client.SubmitClaim(ctx, insurance.SubmitClaimRequest{
		PolicyID:          sub.PolicyID,
		Vehicle:           sub.Vehicle,
		DamageDescription: sub.DamageDescription,
		Photos:            sub.Photos,
	})
	if err != nil {
		return model.Claim{}, err
	}
	return toModelClaim(claim), nil
}

func (r *implRepository) GetPolicy(ctx context.Context, userID string) (model.Policy, error) {
	policy, err := r.client.GetPolicy(ctx, userID)
	if err != nil {
		return model.Policy{}, err
	}
	return model.Policy{
		PolicyID:          policy.PolicyID,
		UserID:            policy.UserID,
		Plan:              policy.Plan,
		Deductible:        policy.Deductible,
		CollisionCoverage: policy.CollisionCoverage,
		Premium:           policy.Premium,
		Status:            policy.Status,
	}, nil
}

func (r *implRepository) CalculatePremium(ctx context.Context, opt repository.PremiumOptions) (model.PremiumQuote, error) {
	quote, err := r.client.CalculatePremium(ctx, insurance.PremiumRequest{
		PolicyID:        opt.PolicyID,
		CurrentCoverage: opt.CurrentCoverage,
		NewCoverage:     opt.NewCoverage,
	})
	if err != nil {
		return model.PremiumQuote{}, err
	}
	return model.PremiumQuote{
		PolicyID:       quote.PolicyID,
		CurrentPremium: quote.CurrentPremium,
		NewPremium:     quote.NewPremium,
	}, nil
}

func toModelClaim(c *insurance.Claim) model.Claim {
	return model.Claim{
		ClaimID:           c.ClaimID,
		PolicyID:          c.PolicyID,
		Status:            c.Status,
		Vehicle:           c.Vehicle,
		DamageDescription: c.DamageDescription,
		Photos:            c.Photos,
		CreatedAt:         c.CreatedAt,
	}
}
