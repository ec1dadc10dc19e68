package http

import (
	"github.com/gin-gonic/gin"

	"insurance-orchestrator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. /route is
// the public conversation endpoint; /ingest is admin-only and rate
// limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/route", h.Route)
	rg.POST("/ingest", mw.AdminSecret(), mw.RateLimit(), h.Ingest)
}
