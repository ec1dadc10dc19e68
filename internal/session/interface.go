package session

import (
	"context"

	"insurance-orchestrator/internal/model"
)

// Store persists conversation session state between turns.
//
// Get lazily creates a session when none exists for the id, so callers
// never need a separate create step. Save stores a full snapshot;
// partial updates are not supported.
type Store interface {
	Get(ctx context.Context, sessionID string) (model.Session, error)
	Save(ctx context.Context, sess model.Session) error

	// Lock serializes turns for one session id and returns the unlock
	// function. Turns for different sessions proceed concurrently.
	Lock(sessionID string) func()

	Close() error
}
