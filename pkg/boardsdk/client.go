package boardsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the boards service. It covers the public endpoints and
// hands out a Session for everything that needs a token.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthenticateWithPassword logs in and returns a session for the user.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// RegisterAndAuthenticate creates an account and returns a session for it.
func (c *SDKClient) RegisterAndAuthenticate(ctx context.Context, req RegisterRequest) (*Session, error) {
	resp, err := c.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
