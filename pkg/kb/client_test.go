package kb_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance-orchestrator/pkg/kb"
)

func TestSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req kb.SearchRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.Query == "empty" {
			json.NewEncoder(w).Encode(kb.SearchResponse{Query: req.Query})
			return
		}
		json.NewEncoder(w).Encode(kb.SearchResponse{
			Results: []string{"Deductibles range from $250 to $1000.", "Collision coverage pays for vehicle damage."},
			Sources: []string{"faq-001", "policy-guide"},
			Query:   req.Query,
		})
	}))
	defer ts.Close()

	client := kb.NewClient(ts.URL, 2*time.Second)

	t.Run("Results", func(t *testing.T) {
		resp, err := client.Search(context.Background(), "what is a deductible")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Results) != 2 || resp.Sources[0] != "faq-001" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("Empty Is Not An Error", func(t *testing.T) {
		resp, err := client.Search(context.Background(), "empty")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Results) != 0 {
			t.Errorf("expected no results, got %+v", resp.Results)
		}
	})
}

func TestSearchUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := kb.NewClient(ts.URL, 2*time.Second)
	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestIngest(t *testing.T) {
	var got kb.IngestRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	client := kb.NewClient(ts.URL, 2*time.Second)
	err := client.Ingest(context.Background(), []kb.Document{
		{Title: "faq-001", Content: "Deductibles range from $250 to $1000."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Documents) != 1 || got.Documents[0].Title != "faq-001" {
		t.Errorf("unexpected ingest payload: %+v", got)
	}
}
