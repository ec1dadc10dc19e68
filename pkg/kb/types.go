package kb

// SearchRequest is the body for POST /search.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse holds ranked snippets with a parallel source list.
type SearchResponse struct {
	Results []string `json:"results"`
	Sources []string `json:"sources"`
	Query   string   `json:"query"`
}

// Document is a knowledge base entry for ingestion.
type Document struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// IngestRequest is the body for POST /documents.
type IngestRequest struct {
	Documents []Document `json:"documents"`
}
