package http

import (
	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
)

// --- Request DTOs ---

type routeReq struct {
	Message   string `json:"message"    binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	UserRole  string `json:"user_role"  binding:"omitempty,oneof=user admin"`
}

func (r routeReq) toScope() model.Scope {
	role := r.UserRole
	if role == "" {
		role = "user"
	}
	return model.Scope{
		SessionID: r.SessionID,
		UserRole:  role,
	}
}

func (r routeReq) toInput() orchestrator.TurnInput {
	return orchestrator.TurnInput{Message: r.Message}
}

type ingestDoc struct {
	Title    string            `json:"title"`
	Content  string            `json:"content" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

type ingestReq struct {
	Documents []ingestDoc `json:"documents" binding:"required,min=1,dive"`
}

func (r ingestReq) toDocuments() []orchestrator.Document {
	docs := make([]orchestrator.Document, 0, len(r.Documents))
	for _, d := range r.Documents {
		docs = append(docs, orchestrator.Document{
			Title:    d.Title,
			Content:  d.Content,
			Metadata: d.Metadata,
		})
	}
	return docs
}

// --- Response DTOs ---

type ingestResp struct {
	Indexed int `json:"indexed"`
}
