package router

import (
	"context"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/pkg/log"
)

// Router is the interface for intent classification.
type Router interface {
	Classify(ctx context.Context, message string, sess model.Session) RouterOutput
}

// HeuristicRouter classifies user intent with a fixed, ordered rule
// set. The ordering is load-bearing: routing tests assert exact
// matches for literal phrases, so the rules must never be reordered or
// replaced with fuzzy matching.
type HeuristicRouter struct {
	l log.Logger
}

// Ensure HeuristicRouter implements Router interface
var _ Router = (*HeuristicRouter)(nil)

// New creates a new HeuristicRouter.
func New(l log.Logger) *HeuristicRouter {
	return &HeuristicRouter{l: l}
}
