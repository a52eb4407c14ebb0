package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangam/bloodbank/internal/core/domain"
	"github.com/sangam/bloodbank/internal/core/ports"
)

const (
	sessionCookieName = "bloodbank_session"
	sessionPayloadKey = "session_payload"
)

// SessionMiddleware is the auth guard for browser routes. A missing or
// invalid session is the normal unauthenticated branch and redirects to
// the login page rather than failing the request.
func SessionMiddleware(sessions ports.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		payload, err := sessions.Verify(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(sessionPayloadKey, &payload)
		c.Next()
	}
}

// AdminMiddleware layers the role check on top of the session guard.
// Non-admin sessions get a denial without any admin content.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := getSessionPayload(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if payload.Role != domain.Admin {
			c.String(http.StatusForbidden, "Access Denied")
			c.Abort()
			return
		}

		c.Next()
	}
}
