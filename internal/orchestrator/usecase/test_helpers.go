package usecase

import (
	"context"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator/repository"
	"insurance-orchestrator/internal/router"
	"insurance-orchestrator/internal/session"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock insurance repository for testing
type mockInsuranceRepo struct {
	claim    model.Claim
	claimErr error

	submitted      model.Claim
	submitErr      error
	lastSubmission *model.ClaimSubmission

	policy    model.Policy
	policyErr error

	quote       model.PremiumQuote
	quoteErr    error
	lastPremium *repository.PremiumOptions

	getClaimCalls int
	submitCalls   int
	policyCalls   int
	premiumCalls  int
}

func (m *mockInsuranceRepo) GetClaim(ctx context.Context, claimID string) (model.Claim, error) {
	m.getClaimCalls++
	if m.claimErr != nil {
		return model.Claim{}, m.claimErr
	}
	return m.claim, nil
}

func (m *mockInsuranceRepo) SubmitClaim(ctx context.Context, sub model.ClaimSubmission) (model.Claim, error) {
	m.submitCalls++
	m.lastSubmission = &sub
	if m.submitErr != nil {
		return model.Claim{}, m.submitErr
	}
	return m.submitted, nil
}

func (m *mockInsuranceRepo) GetPolicy(ctx context.Context, userID string) (model.Policy, error) {
	m.policyCalls++
	if m.policyErr != nil {
		return model.Policy{}, m.policyErr
	}
	return m.policy, nil
}

func (m *mockInsuranceRepo) CalculatePremium(ctx context.Context, opt repository.PremiumOptions) (model.PremiumQuote, error) {
	m.premiumCalls++
	m.lastPremium = &opt
	if m.quoteErr != nil {
		return model.PremiumQuote{}, m.quoteErr
	}
	return m.quote, nil
}

// Mock knowledge repository for testing
type mockKnowledgeRepo struct {
	result    model.KnowledgeResult
	searchErr error

	ingested  []repository.IngestDocument
	ingestErr error
}

func (m *mockKnowledgeRepo) Search(ctx context.Context, query string) (model.KnowledgeResult, error) {
	if m.searchErr != nil {
		return model.KnowledgeResult{}, m.searchErr
	}
	return m.result, nil
}

func (m *mockKnowledgeRepo) Ingest(ctx context.Context, docs []repository.IngestDocument) error {
	m.ingested = append(m.ingested, docs...)
	return m.ingestErr
}

func newTestUseCase(ins repository.InsuranceRepository, kb repository.KnowledgeRepository) *implUseCase {
	l := &mockLogger{}
	return New(l, router.New(l), session.NewMemoryStore(0, 0), ins, kb)
}
