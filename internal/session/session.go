// Package session owns the console's signed-in identity. The browser's
// local-storage entry from the original console becomes a server-side record:
// Redis holds the session payload (user + upstream bearer token), and the
// browser only carries a signed cookie naming the session.
//
// Sessions are explicit values injected where needed — there is no ambient
// current-user singleton.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"dealerdesk/internal/model"
)

// ErrNotFound is returned when no session exists for an id (expired, revoked,
// or never issued).
var ErrNotFound = errors.New("session not found")

// Session is one signed-in identity.
type Session struct {
	ID        string     `json:"id"`
	User      model.User `json:"user"`
	// Token is the upstream bearer token, when the backend revision returns
	// one. Empty means upstream calls go out unauthenticated.
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// New builds a session with a fresh random id.
func New(user model.User, token string, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		User:      user,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Store persists sessions. Implementations must return ErrNotFound for
// missing ids so callers can distinguish "signed out" from infrastructure
// failures.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
