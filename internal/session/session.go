// Package session holds the bearer token of the signed in viewer.
// Tokens are issued by the backend and are never verified on the client side,
// the claims are only inspected to stop sending tokens which are already expired.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired is returned when the token held by session is expired.
var ErrExpired = errors.New("session expired")

// Session ...
type Session struct {
	mu sync.RWMutex

	token   string
	subject string
	expires time.Time

	now func() time.Time
}

// New creates session with initial token which may be empty.
func New(token string) *Session {
	s := &Session{now: time.Now}
	s.Set(token)

	return s
}

// Set replaces token. Opaque (non-JWT) tokens are accepted and never expire.
func (s *Session) Set(token string) {
	var (
		subject string
		expires time.Time
	)

	if token != "" {
		claims := jwt.RegisteredClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil {
			subject = claims.Subject
			if claims.ExpiresAt != nil {
				expires = claims.ExpiresAt.Time
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token, s.subject, s.expires = token, subject, expires
}

// Token returns token to be sent as bearer. Empty token means anonymous session.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", nil
	}

	if !s.expires.IsZero() && !s.now().Before(s.expires) {
		return "", ErrExpired
	}

	return s.token, nil
}

// Subject returns `sub` claim of the token if it has one.
func (s *Session) Subject() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.subject
}

// IsSignedIn ...
func (s *Session) IsSignedIn() bool {
	t, err := s.Token()
	return err == nil && t != ""
}

// Clear drops token.
func (s *Session) Clear() {
	s.Set("")
}
