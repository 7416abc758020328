package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/model"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

type stubAuthService struct {
	registerResp *dto.RegisterResponse
	registerErr  error
}

func (s *stubAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	return nil, "", nil
}

func (s *stubAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, string, error) {
	if s.registerErr != nil {
		return nil, "", s.registerErr
	}
	return s.registerResp, "signed-cookie", nil
}

func (s *stubAuthService) Logout(ctx context.Context, sess *session.Session) error { return nil }

func registerRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc, time.Hour, false)
	r.POST("/v1/auth/register", h.Register)
	return r
}

const registerBody = `{"name":"New Dealer","email":"new@example.com","phoneNumber":"+911234567","password":"secret123","userType":"dealer"}`

func TestRegisterSetsSessionCookie(t *testing.T) {
	svc := &stubAuthService{registerResp: &dto.RegisterResponse{
		User: model.User{ID: "7", Name: "New Dealer", Role: model.RoleDealer},
	}}
	r := registerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(registerBody))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, session.CookieName+"=signed-cookie")
	assert.Contains(t, cookie, "HttpOnly")
}

func TestRegisterPassesThroughUpstreamRejection(t *testing.T) {
	svc := &stubAuthService{registerErr: &upstream.StatusError{
		StatusCode: http.StatusBadRequest, Endpoint: "/api/Auth/register", Body: "username already taken",
	}}
	r := registerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(registerBody))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "username already taken", body["detail"])
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestRegisterServerErrorStaysGeneric(t *testing.T) {
	svc := &stubAuthService{registerErr: &upstream.StatusError{
		StatusCode: http.StatusInternalServerError, Endpoint: "/api/Auth/register", Body: "stack trace here",
	}}
	r := registerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(registerBody))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "financing service request failed", body["detail"])
	assert.NotContains(t, body["detail"], "stack trace")
}
