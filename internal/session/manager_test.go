package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerdesk/internal/model"
)

const testSecret = "test_session_secret_32_chars_min!"

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewManager(NewRedisStore(rdb), testSecret, time.Hour), mr
}

func adminUser() model.User {
	return model.User{ID: "7", Name: "ops", Email: "ops@corp.example", Role: model.RoleAdmin}
}

func TestIssueAndResolve(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	sess, cookie, err := m.Issue(ctx, adminUser(), "bearer-xyz")
	require.NoError(t, err)
	require.NotEmpty(t, cookie)

	got, err := m.Resolve(ctx, cookie)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, model.RoleAdmin, got.User.Role)
	assert.Equal(t, "bearer-xyz", got.Token)
}

func TestResolveTamperedCookie(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, cookie, err := m.Issue(ctx, adminUser(), "")
	require.NoError(t, err)

	_, err = m.Resolve(ctx, cookie+"x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Resolve(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveWrongSecret(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	other := NewManager(m.store, "another_secret_entirely_32_chars", time.Hour)
	_, cookie, err := other.Issue(ctx, adminUser(), "")
	require.NoError(t, err)

	_, err = m.Resolve(ctx, cookie)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevoke(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	sess, cookie, err := m.Issue(ctx, adminUser(), "")
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, sess.ID))

	_, err = m.Resolve(ctx, cookie)
	assert.ErrorIs(t, err, ErrNotFound, "a revoked session must behave as signed out")
}

func TestSessionExpiry(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	_, cookie, err := m.Issue(ctx, adminUser(), "")
	require.NoError(t, err)

	// The store entry ages out with its TTL.
	mr.FastForward(2 * time.Hour)

	_, err = m.Resolve(ctx, cookie)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIssueOverwritesNothing(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	s1, c1, err := m.Issue(ctx, adminUser(), "")
	require.NoError(t, err)
	s2, c2, err := m.Issue(ctx, adminUser(), "")
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID, s2.ID)

	// Both cookies resolve until their sessions expire or are revoked.
	_, err = m.Resolve(ctx, c1)
	assert.NoError(t, err)
	_, err = m.Resolve(ctx, c2)
	assert.NoError(t, err)
}
