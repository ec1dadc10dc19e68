package repository

import (
	"context"

	"insurance-orchestrator/internal/model"
)

// InsuranceRepository is the interface for insurance backend operations.
type InsuranceRepository interface {
	GetClaim(ctx context.Context, claimID string) (model.Claim, error)
	SubmitClaim(ctx context.Context, sub model.ClaimSubmission) (model.Claim, error)
	GetPolicy(ctx context.Context, userID string) (model.Policy, error)
	CalculatePremium(ctx context.Context, opt PremiumOptions) (model.PremiumQuote, error)
}

// PremiumOptions defines a coverage-change quote request.
type PremiumOptions struct {
	PolicyID        string
	CurrentCoverage float64
	NewCoverage     float64
}

// KnowledgeRepository handles knowledge base retrieval and ingestion.
type KnowledgeRepository interface {
	Search(ctx context.Context, query string) (model.KnowledgeResult, error)
	Ingest(ctx context.Context, docs []IngestDocument) error
}

// IngestDocument is a knowledge base entry to index.
type IngestDocument struct {
	Title    string
	Content  string
	Metadata map[string]string
}
