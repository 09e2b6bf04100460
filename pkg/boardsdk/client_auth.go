package boardsdk

import (
	"context"
	"net/http"
)

// Register creates an account and returns its first token.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return call[AuthResponse](ctx, c, http.MethodPost, "/auth/register", "", req, http.StatusCreated)
}

// Login exchanges credentials for a token.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return call[AuthResponse](ctx, c, http.MethodPost, "/auth/login", "", req, http.StatusOK)
}
