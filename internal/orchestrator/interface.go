package orchestrator

import (
	"context"

	"insurance-orchestrator/internal/model"
)

// UseCase defines the business logic interface for the conversation domain.
type UseCase interface {
	// ProcessTurn runs one conversation turn: classify the utterance, fill
	// slots or answer from the knowledge base, gate mutations behind a
	// confirmation, and persist the session. Always returns a usable
	// TurnResult; errors are reserved for malformed input and storage
	// failures.
	ProcessTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnResult, error)

	// IngestDocuments forwards knowledge base documents to the search
	// service. Admin-only at the delivery layer.
	IngestDocuments(ctx context.Context, sc model.Scope, docs []Document) error
}
