package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"insurance-orchestrator/internal/middleware"
	orchestratorHTTP "insurance-orchestrator/internal/orchestrator/delivery/http"
	"insurance-orchestrator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware chain
	mw middleware.Middleware

	// Conversation domain
	conversationHandler orchestratorHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ConversationHandler orchestratorHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		mw:                  cfg.Middleware,
		conversationHandler: cfg.ConversationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationHandler == nil {
		return errors.New("conversation handler is required")
	}
	return nil
}
