package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// sessionDataPath is the identity provider's session-data endpoint.
const sessionDataPath = "/auth/v1/env/oauth/session-data"

// IdentityPayload is the identity provider's session-data response. The
// session token it carries is durable and is reused as the local session
// token; no token is minted locally.
type IdentityPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// IdentityClient calls the external identity provider.
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIdentityClient creates an IdentityClient for the given provider base URL.
func NewIdentityClient(baseURL string) *IdentityClient {
	return &IdentityClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SessionData exchanges an opaque external session identifier for the user's
// identity payload. Any transport failure or non-200 response classifies as
// ErrUnauthenticated; the call is never retried.
func (c *IdentityClient) SessionData(ctx context.Context, sessionID string) (*IdentityPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+sessionDataPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create session-data request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: identity provider unreachable: %v", ErrUnauthenticated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: identity provider returned status %d", ErrUnauthenticated, resp.StatusCode)
	}

	var payload IdentityPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode identity payload: %v", ErrUnauthenticated, err)
	}

	return &payload, nil
}
