package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dealerdesk/internal/model"
)

// CookieName is the browser cookie carrying the signed session reference.
const CookieName = "dealerdesk_session"

// cookieClaims is what actually crosses the wire: a session id and the role,
// signed. The upstream bearer token never leaves the server.
type cookieClaims struct {
	SessionID string     `json:"sid"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues, resolves, and revokes sessions. It is constructed once at
// composition time and injected; init is NewManager, teardown is Revoke.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates and persists a fresh session for user, returning the session
// and the signed cookie value. A previously issued cookie is simply
// superseded — its server-side record ages out on its own TTL.
func (m *Manager) Issue(ctx context.Context, user model.User, bearer string) (*Session, string, error) {
	sess := New(user, bearer, m.ttl)
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	claims := cookieClaims{
		SessionID: sess.ID,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign session cookie: %w", err)
	}
	return sess, signed, nil
}

// Resolve validates a cookie value and loads its session from the store.
// Any failure — bad signature, expiry, revoked id — yields ErrNotFound so the
// guard treats all of them as "not signed in".
func (m *Manager) Resolve(ctx context.Context, cookie string) (*Session, error) {
	claims := &cookieClaims{}
	token, err := jwt.ParseWithClaims(cookie, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, ErrNotFound
	}

	sess, err := m.store.Get(ctx, claims.SessionID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Revoke deletes the session record; the cookie becomes useless immediately.
func (m *Manager) Revoke(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}
