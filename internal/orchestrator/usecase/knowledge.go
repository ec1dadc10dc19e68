package usecase

import (
	"context"
	"strings"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
	"insurance-orchestrator/internal/orchestrator/repository"
)

// topSnippets is how many ranked snippets are joined into the answer.
const topSnippets = 2

// handleKnowledge answers the utterance from the knowledge base. Search
// failure degrades to a system message; the turn still completes.
func (uc *implUseCase) handleKnowledge(ctx context.Context, query string, res *orchestrator.TurnResult) {
	kr, err := uc.knowledgeRepo.Search(ctx, query)
	if err != nil {
		uc.l.Errorf(ctx, "handleKnowledge: search failed: %v", err)
		res.Messages = append(res.Messages, systemMsg("KB error: "+truncate(err.Error(), maxUpstreamDetail)))
		return
	}

	if len(kr.Results) == 0 {
		res.Messages = append(res.Messages, assistantMsg(msgNoKnowledge))
		return
	}

	top := kr.Results
	if len(top) > topSnippets {
		top = top[:topSnippets]
	}
	res.Messages = append(res.Messages, assistantMsg(strings.Join(top, "\n\n")))
	res.Cards[orchestrator.CardKnowledgeBase] = kr
}

// IngestDocuments forwards documents to the search service for indexing.
func (uc *implUseCase) IngestDocuments(ctx context.Context, sc model.Scope, docs []orchestrator.Document) error {
	if len(docs) == 0 {
		return orchestrator.ErrNoDocuments
	}

	out := make([]repository.IngestDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, repository.IngestDocument{
			Title:    d.Title,
			Content:  d.Content,
			Metadata: d.Metadata,
		})
	}

	uc.l.Infof(ctx, "IngestDocuments: session=%s indexing %d documents", sc.SessionID, len(out))
	return uc.knowledgeRepo.Ingest(ctx, out)
}
