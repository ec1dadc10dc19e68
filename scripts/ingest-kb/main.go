package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"insurance-orchestrator/config"
	"insurance-orchestrator/pkg/kb"
	"insurance-orchestrator/pkg/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/ingest-kb/main.go <path/to/knowledge_base.json>")
		fmt.Println("Example: go run scripts/ingest-kb/main.go data/knowledge_base.json")
		os.Exit(1)
	}
	sourcePath := os.Args[1]

	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read %s: %v", sourcePath, err)
	}

	var docs []kb.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		logger.Fatalf(ctx, "Failed to parse %s: %v", sourcePath, err)
	}
	if len(docs) == 0 {
		logger.Fatalf(ctx, "No documents found in %s", sourcePath)
	}

	kbClient := kb.NewClient(cfg.Knowledge.URL, cfg.Knowledge.Timeout)

	logger.Infof(ctx, "Ingesting %d documents into %s...", len(docs), cfg.Knowledge.URL)

	// Upload one at a time so a single bad document does not sink the batch.
	successCount := 0
	for i, doc := range docs {
		if err := kbClient.Ingest(ctx, []kb.Document{doc}); err != nil {
			logger.Errorf(ctx, "Failed to ingest %q: %v", doc.Title, err)
			continue
		}
		logger.Infof(ctx, "Ingested document %d/%d: %s", i+1, len(docs), doc.Title)
		successCount++
	}

	logger.Infof(ctx, "Ingest complete! %d/%d documents indexed.", successCount, len(docs))
}
