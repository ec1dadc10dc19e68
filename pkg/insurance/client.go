package insurance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

// DefaultTimeout bounds every round-trip to the insurance backend,
// login included.
const DefaultTimeout = 10 * time.Second

// Credentials is the service identity used for the login exchange.
type Credentials struct {
	Email    string
	Password string
}

// Client is the HTTP wrapper for the insurance backend REST API.
// Every operation authenticates with a bearer token obtained via
// POST /auth/login; tokens are cached through an oauth2.ReuseTokenSource
// and re-issued on expiry or 401.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	tokens     oauth2.TokenSource
}

// NewClient creates a new insurance backend client.
func NewClient(baseURL string, creds Credentials, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    baseURL,
		creds:      creds,
		httpClient: &http.Client{Timeout: timeout},
	}
	c.resetTokenSource()
	return c
}

// SetAPIURL overrides the backend URL for testing purposes.
func (c *Client) SetAPIURL(u string) {
	c.baseURL = u
	c.resetTokenSource()
}

func (c *Client) resetTokenSource() {
	c.tokens = oauth2.ReuseTokenSource(nil, &loginTokenSource{client: c})
}

// GetClaim fetches a claim by its ID via GET /insurance/claims.
func (c *Client) GetClaim(ctx context.Context, claimID string) (*Claim, error) {
	endpoint := fmt.Sprintf("%s/insurance/claims?claim_id=%s", c.baseURL, url.QueryEscape(claimID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get claim request: %w", err)
	}

	var claim Claim
	if err := c.do(httpReq, &claim); err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return &claim, nil
}

// SubmitClaim creates a new claim via POST /insurance/claims.
func (c *Client) SubmitClaim(ctx context.Context, req SubmitClaimRequest) (*Claim, error) {
	endpoint := fmt.Sprintf("%s/insurance/claims", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submit claim request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build submit claim request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var claim Claim
	if err := c.do(httpReq, &claim); err != nil {
		return nil, fmt.Errorf("submit claim: %w", err)
	}
	return &claim, nil
}

// GetPolicy fetches policy details for a user via GET /insurance/policy.
func (c *Client) GetPolicy(ctx context.Context, userID string) (*Policy, error) {
	endpoint := fmt.Sprintf("%s/insurance/policy?user_id=%s", c.baseURL, url.QueryEscape(userID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get policy request: %w", err)
	}

	var policy Policy
	if err := c.do(httpReq, &policy); err != nil {
		return nil, fmt.Errorf("get policy: %w", err)
	}
	return &policy, nil
}

// CalculatePremium quotes a coverage change via POST /insurance/premium.
func (c *Client) CalculatePremium(ctx context.Context, req PremiumRequest) (*PremiumQuote, error) {
	endpoint := fmt.Sprintf("%s/insurance/premium", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal premium request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build premium request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var quote PremiumQuote
	if err := c.do(httpReq, &quote); err != nil {
		return nil, fmt.Errorf("calculate premium: %w", err)
	}
	return &quote, nil
}

// do authenticates the request, executes it, and decodes the JSON body
// into out. A 401 forces one token refresh and a single retry; any other
// non-2xx status is returned as an error carrying the upstream body.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.send(req)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.resetTokenSource()
		retry, cloneErr := cloneRequest(req)
		if cloneErr != nil {
			return cloneErr
		}
		resp, err = c.send(retry)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("insurance API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode insurance API response: %w", err)
	}
	return nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("service login failed: %w", err)
	}
	tok.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call insurance API: %w", err)
	}
	return resp, nil
}

// cloneRequest rebuilds a request so its body can be sent again.
func cloneRequest(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		clone.Body = body
	}
	return clone, nil
}
