package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/apierror"
	"dealerdesk/internal/dto"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/service"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

type AuthHandler struct {
	svc    service.AuthService
	ttl    time.Duration
	secure bool
}

// NewAuthHandler builds the auth handler. secure marks the session cookie
// Secure, which production configs should always set.
func NewAuthHandler(svc service.AuthService, ttl time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, ttl: ttl, secure: secure}
}

// Login authenticates and sets the session cookie. Every failed attempt gets
// the same 401 body; nothing distinguishes a bad password from an unknown user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, cookie, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierror.New(service.ErrInvalidCredentials.Error()))
			return
		}
		upstreamError(c, err)
		return
	}

	h.setSessionCookie(c, cookie, int(h.ttl.Seconds()))
	c.JSON(http.StatusOK, resp)
}

// Register creates the account and signs the new user in: the session
// cookie is set on the 201 response. Upstream rejection text (duplicate
// username and the like) is passed through when the backend provides it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, cookie, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		var se *upstream.StatusError
		if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 && se.Body != "" {
			c.JSON(se.StatusCode, apierror.New(se.Body))
			return
		}
		upstreamError(c, err)
		return
	}

	h.setSessionCookie(c, cookie, int(h.ttl.Seconds()))
	c.JSON(http.StatusCreated, resp)
}

// Logout revokes the session and expires the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess != nil {
		if err := h.svc.Logout(c.Request.Context(), sess); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("logout failed"))
			return
		}
	}
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// Session returns the signed-in identity, for the SPA's boot-time check.
func (h *AuthHandler) Session(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, dto.SessionResponse{
		User:      sess.User,
		ExpiresAt: sess.ExpiresAt.Format(time.RFC3339),
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", h.secure, true)
}
