package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/model"
	"dealerdesk/internal/repository"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

// ErrInvalidCredentials is returned for any failed login, whatever the
// underlying reason. Callers must not leak which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService fronts the upstream auth surface and owns the session
// lifecycle around it.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, string, error)
	Logout(ctx context.Context, sess *session.Session) error
}

type authService struct {
	auth     upstream.AuthAPI
	sessions *session.Manager
	audit    repository.AuditRepository
}

func NewAuthService(auth upstream.AuthAPI, sessions *session.Manager, audit repository.AuditRepository) AuthService {
	return &authService{auth: auth, sessions: sessions, audit: audit}
}

// Login authenticates against the upstream API and, on success, issues a
// session. The second return value is the signed cookie for the browser.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	result, err := s.auth.Login(ctx, upstream.LoginRequest{
		Username: req.Username,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		if upstream.IsUnauthorized(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !result.Authenticated {
		return nil, "", ErrInvalidCredentials
	}

	user, bearer := normalizeLogin(req, result)
	sess, cookie, err := s.sessions.Issue(ctx, user, bearer)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	recordAudit(ctx, s.audit, sess, model.AuditLogin, "user", user.ID, "signed in as "+string(user.Role))

	return &dto.LoginResponse{User: user, Redirect: user.Role.DashboardPath()}, cookie, nil
}

// normalizeLogin builds the session identity from whichever login shape the
// backend answered with. The bare-boolean shape carries no user record, so
// the submitted credentials fill the gaps.
func normalizeLogin(req dto.LoginRequest, result *upstream.LoginResult) (model.User, string) {
	role := model.Role(req.UserType)
	if result.User == nil {
		return model.User{Name: req.Username, Role: role}, ""
	}

	u := result.User
	user := model.User{
		ID:    strconv.FormatInt(u.ID, 10),
		Name:  u.Username,
		Email: u.Email,
		Role:  role,
	}
	if u.UserType != "" && model.Role(u.UserType).Valid() {
		user.Role = model.Role(u.UserType)
	}
	bearer := ""
	if u.Token != nil {
		bearer = *u.Token
	}
	return user, bearer
}

// Register creates the account upstream and signs the new user in right
// away, issuing a session exactly as Login does. The response carries no
// redirect; the caller decides where to navigate.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, string, error) {
	created, err := s.auth.Register(ctx, upstream.RegisterRequest{
		Username:    req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		UserType:    req.UserType,
	})
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	user := model.User{
		ID:    strconv.FormatInt(created.ID, 10),
		Name:  created.Username,
		Email: created.Email,
		Role:  model.Role(req.UserType),
	}
	bearer := ""
	if created.Token != nil {
		bearer = *created.Token
	}

	sess, cookie, err := s.sessions.Issue(ctx, user, bearer)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}
	recordAudit(ctx, s.audit, sess, model.AuditRegister, "user", user.ID, "registered "+user.Name)

	return &dto.RegisterResponse{User: user}, cookie, nil
}

// Logout revokes the session server-side; the expired cookie is the
// handler's job.
func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.sessions.Revoke(ctx, sess.ID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	recordAudit(ctx, s.audit, sess, model.AuditLogout, "user", sess.User.ID, "")
	return nil
}
