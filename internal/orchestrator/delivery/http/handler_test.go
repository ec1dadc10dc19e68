package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"insurance-orchestrator/config"
	"insurance-orchestrator/internal/middleware"
	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/orchestrator"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock use case for testing
type mockUseCase struct {
	result    orchestrator.TurnResult
	err       error
	lastScope model.Scope
	lastInput orchestrator.TurnInput

	ingested  []orchestrator.Document
	ingestErr error
}

func (m *mockUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input orchestrator.TurnInput) (orchestrator.TurnResult, error) {
	m.lastScope = sc
	m.lastInput = input
	return m.result, m.err
}

func (m *mockUseCase) IngestDocuments(ctx context.Context, sc model.Scope, docs []orchestrator.Document) error {
	m.ingested = append(m.ingested, docs...)
	return m.ingestErr
}

func newTestServer(uc orchestrator.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	mw := middleware.New(l, config.AdminConfig{SharedSecret: "s3cret", RateLimitPerMin: 600})
	r := gin.New()
	RegisterRoutes(r.Group(""), New(l, uc), mw)
	return r
}

func TestRouteEndpoint(t *testing.T) {
	uc := &mockUseCase{
		result: orchestrator.TurnResult{
			Messages: []orchestrator.Message{{From: orchestrator.FromAssistant, Text: "Claim 98765 status: APPROVED"}},
			Cards:    map[string]any{},
			State:    orchestrator.SessionSnapshot{ClaimID: "98765", LastIntent: "CLAIM_STATUS"},
		},
	}
	r := newTestServer(uc)

	t.Run("Success", func(t *testing.T) {
		body := bytes.NewBufferString(`{"message":"check claim 98765","session_id":"s1","user_role":"user"}`)
		req := httptest.NewRequest(http.MethodPost, "/route", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if uc.lastScope.SessionID != "s1" || uc.lastScope.UserRole != "user" {
			t.Errorf("scope = %+v", uc.lastScope)
		}
		if uc.lastInput.Message != "check claim 98765" {
			t.Errorf("input = %+v", uc.lastInput)
		}

		var resp struct {
			ErrorCode int                     `json:"error_code"`
			Data      orchestrator.TurnResult `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("error_code = %d", resp.ErrorCode)
		}
		if len(resp.Data.Messages) != 1 || resp.Data.Messages[0].Text != "Claim 98765 status: APPROVED" {
			t.Errorf("data = %+v", resp.Data)
		}
		if resp.Data.State.ClaimID != "98765" {
			t.Errorf("state = %+v", resp.Data.State)
		}
	})

	t.Run("Default Role", func(t *testing.T) {
		body := bytes.NewBufferString(`{"message":"hello","session_id":"s2"}`)
		req := httptest.NewRequest(http.MethodPost, "/route", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if uc.lastScope.UserRole != "user" {
			t.Errorf("role = %q, want user", uc.lastScope.UserRole)
		}
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		body := bytes.NewBufferString(`{"message":"hello"}`)
		req := httptest.NewRequest(http.MethodPost, "/route", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestIngestEndpoint(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestServer(uc)

	docsBody := `{"documents":[{"title":"deductibles","content":"A deductible is...","metadata":{"category":"faq"}}]}`

	t.Run("Requires Admin Secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ingest", bytes.NewBufferString(docsBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if len(uc.ingested) != 0 {
			t.Error("documents must not reach the use case without the secret")
		}
	})

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ingest", bytes.NewBufferString(docsBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderAdminSecret, "s3cret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if len(uc.ingested) != 1 || uc.ingested[0].Title != "deductibles" {
			t.Errorf("ingested = %+v", uc.ingested)
		}
	})

	t.Run("Empty Documents Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ingest", bytes.NewBufferString(`{"documents":[]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderAdminSecret, "s3cret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
