package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dealerdesk/internal/model"
)

// AuthAPI is the remote authentication/staff service consumed by the console.
type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthUser, error)
	AddRepresentative(ctx context.Context, token string, req AddRepresentativeRequest) (*model.Representative, error)
	Representatives(ctx context.Context, token string) ([]model.Representative, error)
	Representative(ctx context.Context, token string, id int64) (*model.Representative, error)
	UpdateRepresentative(ctx context.Context, token string, id int64, req RepresentativeUpdate) (*model.Representative, error)
	DeleteRepresentative(ctx context.Context, token string, id int64) error
}

// LoginRequest is the upstream credential payload. The backend calls the
// role "userType".
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// RegisterRequest creates a new login upstream.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	UserType    string `json:"userType"`
}

// AddRepresentativeRequest creates a staff account.
type AddRepresentativeRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// RepresentativeUpdate carries the mutable representative fields; userType is
// immutable upstream.
type RepresentativeUpdate struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    bool   `json:"isActive"`
}

// AuthUser is the upstream user record. Token is only present on responses
// from backend revisions that mint one at login/registration.
type AuthUser struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	UserType    string  `json:"userType"`
	IsActive    bool    `json:"isActive"`
	Token       *string `json:"token"`
}

// LoginResult normalizes the two login response shapes the backend has
// shipped: a bare boolean, or a full user object (with optional token).
// User is nil for the boolean shape.
type LoginResult struct {
	Authenticated bool
	User          *AuthUser
}

// AuthClient implements AuthAPI against the remote /api/Auth surface.
type AuthClient struct{ c *Client }

func NewAuthClient(baseURL string, breaker *Breaker) *AuthClient {
	return &AuthClient{c: NewClient("auth", baseURL, breaker)}
}

func (a *AuthClient) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var raw json.RawMessage
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/Auth/login", body: req, out: &raw})
	if err != nil {
		return nil, err
	}
	return parseLoginBody(raw)
}

func parseLoginBody(raw json.RawMessage) (*LoginResult, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return nil, &MalformedResponseError{Endpoint: "/api/Auth/login", Reason: "empty body"}
	case bytes.Equal(trimmed, []byte("true")):
		return &LoginResult{Authenticated: true}, nil
	case bytes.Equal(trimmed, []byte("false")):
		return &LoginResult{Authenticated: false}, nil
	}

	var user AuthUser
	if err := json.Unmarshal(trimmed, &user); err != nil {
		return nil, &MalformedResponseError{Endpoint: "/api/Auth/login", Reason: err.Error()}
	}
	if user.Username == "" {
		return nil, &MalformedResponseError{Endpoint: "/api/Auth/login", Reason: "user object missing username"}
	}
	return &LoginResult{Authenticated: true, User: &user}, nil
}

func (a *AuthClient) Register(ctx context.Context, req RegisterRequest) (*AuthUser, error) {
	var user AuthUser
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/Auth/register", body: req, out: &user})
	if err != nil {
		return nil, err
	}
	if user.Username == "" {
		// Older backend revisions answer with an empty body; fall back to the
		// submitted identity so the caller can still build a session.
		user = AuthUser{Username: req.Username, Email: req.Email, PhoneNumber: req.PhoneNumber, UserType: req.UserType, IsActive: true}
	}
	return &user, nil
}

func (a *AuthClient) AddRepresentative(ctx context.Context, token string, req AddRepresentativeRequest) (*model.Representative, error) {
	var rep model.Representative
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/Auth/add-representative", token: token, body: req, out: &rep})
	if err != nil {
		return nil, err
	}
	if rep.Username == "" {
		rep = model.Representative{Username: req.Username, Email: req.Email, PhoneNumber: req.PhoneNumber, IsActive: true}
	}
	return &rep, nil
}

func (a *AuthClient) Representatives(ctx context.Context, token string) ([]model.Representative, error) {
	var reps []model.Representative
	err := a.c.do(ctx, call{method: http.MethodGet, path: "/api/Auth/representatives", token: token, out: &reps})
	if err != nil {
		return nil, err
	}
	for i := range reps {
		if err := validRepresentative(&reps[i], "/api/Auth/representatives"); err != nil {
			return nil, err
		}
	}
	return reps, nil
}

func (a *AuthClient) Representative(ctx context.Context, token string, id int64) (*model.Representative, error) {
	path := fmt.Sprintf("/api/Auth/representatives/%d", id)
	var rep model.Representative
	if err := a.c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &rep}); err != nil {
		return nil, err
	}
	if err := validRepresentative(&rep, path); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (a *AuthClient) UpdateRepresentative(ctx context.Context, token string, id int64, req RepresentativeUpdate) (*model.Representative, error) {
	path := fmt.Sprintf("/api/Auth/representatives/%d", id)
	var rep model.Representative
	if err := a.c.do(ctx, call{method: http.MethodPut, path: path, token: token, body: req, out: &rep}); err != nil {
		return nil, err
	}
	if rep.Username == "" {
		// Empty-body revision: echo back the applied update.
		rep = model.Representative{ID: id, Email: req.Email, PhoneNumber: req.PhoneNumber, IsActive: req.IsActive}
	}
	return &rep, nil
}

func (a *AuthClient) DeleteRepresentative(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/Auth/representatives/%d", id)
	return a.c.do(ctx, call{method: http.MethodDelete, path: path, accept: "*/*", token: token})
}

func validRepresentative(rep *model.Representative, endpoint string) error {
	if rep.ID == 0 || rep.Username == "" {
		return &MalformedResponseError{Endpoint: endpoint, Reason: "representative missing id or username"}
	}
	return nil
}
