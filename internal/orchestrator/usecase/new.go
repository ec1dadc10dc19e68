package usecase

import (
	"insurance-orchestrator/internal/orchestrator/repository"
	"insurance-orchestrator/internal/router"
	"insurance-orchestrator/internal/session"
	pkgLog "insurance-orchestrator/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	router        router.Router
	store         session.Store
	insuranceRepo repository.InsuranceRepository
	knowledgeRepo repository.KnowledgeRepository
}

// New creates a new conversation UseCase instance.
func New(
	l pkgLog.Logger,
	rt router.Router,
	store session.Store,
	insuranceRepo repository.InsuranceRepository,
	knowledgeRepo repository.KnowledgeRepository,
) *implUseCase {
	return &implUseCase{
		l:             l,
		router:        rt,
		store:         store,
		insuranceRepo: insuranceRepo,
		knowledgeRepo: knowledgeRepo,
	}
}
