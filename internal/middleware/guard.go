package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dealerdesk/internal/apierror"
	"dealerdesk/internal/model"
	"dealerdesk/internal/session"
)

// SessionKey is the gin context key holding the resolved *session.Session.
const SessionKey = "session"

// SessionGuard resolves the session cookie (or a Bearer header for
// non-browser clients) before any protected handler runs. Without a valid
// session the response is a 401 carrying the login route and the originally
// requested location, which the SPA uses for its post-login return.
func SessionGuard(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			abortToLogin(c)
			return
		}

		sess, err := mgr.Resolve(c.Request.Context(), token)
		if err != nil {
			abortToLogin(c)
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// RequireRole rejects sessions whose role is not in the allowed set. The
// rejection redirects to the session's own dashboard rather than erroring,
// matching the console's navigation contract.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !allowed[sess.User.Role] {
			redirect := "/login"
			if sess != nil {
				redirect = sess.User.Role.DashboardPath()
			}
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.NewRedirect("insufficient permissions", redirect, ""))
			return
		}
		c.Next()
	}
}

// GetSession retrieves the resolved session from the gin context; nil when
// the guard has not run.
func GetSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func abortToLogin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		apierror.NewRedirect("authentication required", "/login", c.Request.URL.Path))
}
