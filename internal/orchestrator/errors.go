package orchestrator

import "errors"

// Domain-specific errors for the conversation package.
var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrEmptySessionID = errors.New("session id is empty")
	ErrNoDocuments    = errors.New("no documents to ingest")
)
