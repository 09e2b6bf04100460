package boardsdk

import "sync"

// Session is an authenticated user. Tokens are long lived and there is no
// refresh: once the server rejects the token, log in again.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
	user  User
}

func newSession(client *SDKClient, resp *AuthResponse) *Session {
	return &Session{
		client: client,
		token:  resp.Token,
		user:   resp.User,
	}
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the account the session was created for. It is empty for
// sessions built with NewSessionFromToken.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
