package service

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/model"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

func newSessionManager(t *testing.T) (*session.Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return session.NewManager(session.NewRedisStore(rdb), "test-secret", time.Hour), mr
}

func TestLoginSuccessIssuesSession(t *testing.T) {
	token := "upstream-tok"
	auth := &stubAuthAPI{loginResult: &upstream.LoginResult{
		Authenticated: true,
		User:          &upstream.AuthUser{ID: 42, Username: "ravi", Email: "ravi@example.com", UserType: "admin", Token: &token},
	}}
	mgr, _ := newSessionManager(t)
	audit := &stubAudit{}
	svc := NewAuthService(auth, mgr, audit)

	resp, cookie, err := svc.Login(t.Context(), dto.LoginRequest{Username: "ravi", Password: "pw", UserType: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/dashboard", resp.Redirect)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	assert.Equal(t, "42", resp.User.ID)

	// The cookie resolves to a live session carrying the upstream token.
	sess, err := mgr.Resolve(t.Context(), cookie)
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)

	require.Len(t, audit.events, 1)
	assert.Equal(t, model.AuditLogin, audit.events[0].Action)
}

func TestLoginDealerRedirect(t *testing.T) {
	auth := &stubAuthAPI{loginResult: &upstream.LoginResult{Authenticated: true}}
	mgr, _ := newSessionManager(t)
	svc := NewAuthService(auth, mgr, &stubAudit{})

	resp, _, err := svc.Login(t.Context(), dto.LoginRequest{Username: "sunrise", Password: "pw", UserType: "dealer"})
	require.NoError(t, err)
	assert.Equal(t, "/dealer/dashboard", resp.Redirect)
	assert.Equal(t, "sunrise", resp.User.Name)
}

func TestLoginRejectedStoresNothing(t *testing.T) {
	auth := &stubAuthAPI{loginResult: &upstream.LoginResult{Authenticated: false}}
	mgr, mr := newSessionManager(t)
	audit := &stubAudit{}
	svc := NewAuthService(auth, mgr, audit)

	_, cookie, err := svc.Login(t.Context(), dto.LoginRequest{Username: "ravi", Password: "wrong", UserType: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, cookie)
	assert.Empty(t, mr.Keys())
	assert.Empty(t, audit.events)
}

func TestLoginUpstream401MapsToInvalidCredentials(t *testing.T) {
	auth := &stubAuthAPI{loginErr: &upstream.StatusError{StatusCode: 401, Endpoint: "/api/Auth/login"}}
	mgr, _ := newSessionManager(t)
	svc := NewAuthService(auth, mgr, &stubAudit{})

	_, _, err := svc.Login(t.Context(), dto.LoginRequest{Username: "ravi", Password: "pw", UserType: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	auth := &stubAuthAPI{loginResult: &upstream.LoginResult{Authenticated: true}}
	mgr, _ := newSessionManager(t)
	svc := NewAuthService(auth, mgr, &stubAudit{})

	_, cookie, err := svc.Login(t.Context(), dto.LoginRequest{Username: "ravi", Password: "pw", UserType: "admin"})
	require.NoError(t, err)
	sess, err := mgr.Resolve(t.Context(), cookie)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(t.Context(), sess))
	_, err = mgr.Resolve(t.Context(), cookie)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRegisterSignsUserIn(t *testing.T) {
	mgr, _ := newSessionManager(t)
	audit := &stubAudit{}
	svc := NewAuthService(&stubAuthAPI{}, mgr, audit)

	resp, cookie, err := svc.Register(t.Context(), dto.RegisterRequest{
		Name: "New Dealer", Email: "new@example.com", PhoneNumber: "+911234567",
		Password: "secret123", UserType: "dealer",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Dealer", resp.User.Name)
	assert.Equal(t, model.RoleDealer, resp.User.Role)

	// Registration signs the user in: the cookie resolves to a live session.
	require.NotEmpty(t, cookie)
	sess, err := mgr.Resolve(t.Context(), cookie)
	require.NoError(t, err)
	assert.Equal(t, resp.User, sess.User)

	require.Len(t, audit.events, 1)
	assert.Equal(t, model.AuditRegister, audit.events[0].Action)
	assert.Equal(t, "New Dealer", audit.events[0].Actor)
}

func TestRegisterUpstreamFailureStoresNothing(t *testing.T) {
	auth := &stubAuthAPI{registerErr: &upstream.StatusError{
		StatusCode: 400, Endpoint: "/api/Auth/register", Body: "username already taken",
	}}
	mgr, mr := newSessionManager(t)
	svc := NewAuthService(auth, mgr, &stubAudit{})

	_, cookie, err := svc.Register(t.Context(), dto.RegisterRequest{
		Name: "New Dealer", Email: "new@example.com", PhoneNumber: "+911234567",
		Password: "secret123", UserType: "dealer",
	})
	require.Error(t, err)
	assert.Empty(t, cookie)
	assert.Empty(t, mr.Keys())
}
