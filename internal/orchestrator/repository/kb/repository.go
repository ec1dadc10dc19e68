package kb

import (
	"context"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator/repository"
	"insurance-orchestrator/pkg/kb"
	pkgLog "insurance-orchestrator/pkg/log"
)

type implRepository struct {
	l      pkgLog.Logger
	client *kb.Client
}

var _ repository.KnowledgeRepository = (*implRepository)(nil)

// New creates a KnowledgeRepository backed by the search service client.
func New(l pkgLog.Logger, client *kb.Client) *implRepository {
	return &implRepository{l: l, client: client}
}

func (r *implRepository) Search(ctx context.Context, query string) (model.KnowledgeResult, error) {
	resp, err := r.client.Search(ctx, query)
	if err != nil {
		return model.KnowledgeResult{}, err
	}
	return model.KnowledgeResult{
		Results: resp.Results,
		Sources: resp.Sources,
		Query:   resp.Query,
	}, nil
}

func (r *implRepository) Ingest(ctx context.Context, docs []repository.IngestDocument) error {
	out := make([]kb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, kb.Document{
			Title:    d.Title,
			Content:  d.Content,
			Metadata: d.Metadata,
		})
	}
	return r.client.Ingest(ctx, out)
}
