package insurance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/oauth2"
)

// tokenLifetime is how long a cached service token is trusted before
// the next call re-authenticates. The backend does not report expiry,
// so the window stays short.
const tokenLifetime = 5 * time.Minute

// loginTokenSource obtains a bearer token through the backend's
// email/password login endpoint. Wrapped in oauth2.ReuseTokenSource it
// doubles as the optional token cache: Token is only called when the
// cached token has expired.
type loginTokenSource struct {
	client *Client
}

var _ oauth2.TokenSource = (*loginTokenSource)(nil)

func (s *loginTokenSource) Token() (*oauth2.Token, error) {
	c := s.client
	payload, err := json.Marshal(loginRequest{
		Email:    c.creds.Email,
		Password: c.creds.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login request: %w", err)
	}

	resp, err := c.httpClient.Post(
		fmt.Sprintf("%s/auth/login", c.baseURL),
		"application/json",
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to call login API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("login API error %d: %s", resp.StatusCode, string(raw))
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	return &oauth2.Token{
		AccessToken: out.AccessToken,
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(tokenLifetime),
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}
