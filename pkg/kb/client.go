package kb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the HTTP wrapper for the knowledge retrieval service.
// The service owns embeddings and vector search; this client only
// speaks its query/ingest API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new knowledge service client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetAPIURL overrides the service URL for testing purposes.
func (c *Client) SetAPIURL(u string) {
	c.baseURL = u
}

// Search runs a semantic query. An empty result list is a valid
// "no match" answer, not an error.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	endpoint := fmt.Sprintf("%s/search", c.baseURL)

	body, err := json.Marshal(SearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call knowledge API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("knowledge API search error: %d", resp.StatusCode)
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &result, nil
}

// Ingest uploads documents for indexing.
func (c *Client) Ingest(ctx context.Context, docs []Document) error {
	endpoint := fmt.Sprintf("%s/documents", c.baseURL)

	body, err := json.Marshal(IngestRequest{Documents: docs})
	if err != nil {
		return fmt.Errorf("failed to marshal ingest request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build ingest request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call knowledge API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("knowledge API ingest error: %d", resp.StatusCode)
	}
	return nil
}
