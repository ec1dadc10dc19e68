package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"insurance-orchestrator/config"
	_ "insurance-orchestrator/docs" // Swagger docs
	"insurance-orchestrator/internal/httpserver"
	"insurance-orchestrator/internal/middleware"
	orchestratorHTTP "insurance-orchestrator/internal/orchestrator/delivery/http"
	insuranceRepo "insurance-orchestrator/internal/orchestrator/repository/insurance"
	kbRepo "insurance-orchestrator/internal/orchestrator/repository/kb"
	"insurance-orchestrator/internal/orchestrator/usecase"
	"insurance-orchestrator/internal/router"
	"insurance-orchestrator/internal/session"
	"insurance-orchestrator/pkg/insurance"
	"insurance-orchestrator/pkg/kb"
	"insurance-orchestrator/pkg/log"
)

// @title       Insurance Orchestrator API
// @description Conversational routing engine for insurance claims, premiums, and policy knowledge.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Insurance Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Insurance API: %s", cfg.Insurance.URL)
	logger.Infof(ctx, "Knowledge API: %s", cfg.Knowledge.URL)

	// 3. Backend clients
	insuranceClient := insurance.NewClient(cfg.Insurance.URL, insurance.Credentials{
		Email:    cfg.Insurance.ServiceEmail,
		Password: cfg.Insurance.ServicePassword,
	}, cfg.Insurance.Timeout)
	kbClient := kb.NewClient(cfg.Knowledge.URL, cfg.Knowledge.Timeout)

	// 4. Session store
	var store session.Store
	switch cfg.Session.Backend {
	case config.SessionBackendSQLite:
		store, err = session.NewSQLiteStore(cfg.Session.SQLitePath)
		if err != nil {
			logger.Error(ctx, "Failed to open session store: ", err)
			return
		}
		logger.Infof(ctx, "Session store: sqlite (%s)", cfg.Session.SQLitePath)
	default:
		store = session.NewMemoryStore(cfg.Session.Capacity, cfg.Session.TTL)
		logger.Infof(ctx, "Session store: memory (capacity=%d, ttl=%s)", cfg.Session.Capacity, cfg.Session.TTL)
	}
	defer store.Close()

	// 5. Conversation domain
	conversationUC := usecase.New(
		logger,
		router.New(logger),
		store,
		insuranceRepo.New(logger, insuranceClient),
		kbRepo.New(logger, kbClient),
	)
	conversationHandler := orchestratorHTTP.New(logger, conversationUC)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.Admin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Middleware:          mw,
		ConversationHandler: conversationHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
