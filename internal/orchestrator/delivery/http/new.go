package http

import (
	"github.com/gin-gonic/gin"

	"insurance-orchestrator/internal/orchestrator"
	"insurance-orchestrator/pkg/log"
)

// Handler is the public interface for the conversation HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	Ingest(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc orchestrator.UseCase
}

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc orchestrator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
