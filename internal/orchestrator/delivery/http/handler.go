package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"insurance-orchestrator/internal/orchestrator"
	"insurance-orchestrator/pkg/response"
)

// Route godoc
// @Summary     Process one conversation turn
// @Description Classifies the utterance, advances slot filling or the confirmation gate, and returns messages, suggested actions, data cards, and the session snapshot.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Turn input"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.ProcessTurn(ctx, req.toScope(), req.toInput())
	if err != nil {
		if errors.Is(err, orchestrator.ErrEmptyMessage) || errors.Is(err, orchestrator.ErrEmptySessionID) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, result)
}

// Ingest godoc
// @Summary     Ingest knowledge base documents
// @Description Forwards documents to the knowledge search service for indexing. Requires the admin shared secret.
// @Tags        Knowledge
// @Accept      json
// @Produce     json
// @Param       X-Admin-Secret header string true "Admin shared secret"
// @Param       body body ingestReq true "Documents"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /ingest [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := routeReq{SessionID: "ingest", UserRole: "admin"}.toScope()
	if err := h.uc.IngestDocuments(ctx, sc, req.toDocuments()); err != nil {
		if errors.Is(err, orchestrator.ErrNoDocuments) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.IngestDocuments: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, ingestResp{Indexed: len(req.Documents)})
}
