package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangam/bloodbank/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewAuthHandler(
	authService ports.AuthService,
	sessions ports.SessionService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
		metrics:     metrics,
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login checks the submitted credentials and opens a session. Failed
// logins re-render the form with an inline error and never set a cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	email := c.PostForm("email")
	password := c.PostForm("password")

	token, user, err := h.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		h.logger.Info("Login failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	h.logger.Info("User logged in successfully", map[string]interface{}{
		"email":   email,
		"user_id": user.ID,
	})

	// Session-scoped cookie; the server-side TTL bounds its lifetime.
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout revokes the live session if one exists and always redirects to
// the login page. Logging out without a session is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	token, err := c.Cookie(sessionCookieName)
	if err == nil && token != "" {
		payload, err := h.sessions.Verify(c.Request.Context(), token)
		if err == nil {
			if err := h.sessions.Revoke(c.Request.Context(), payload.SessionID); err != nil {
				h.logger.Error("Failed to revoke session", map[string]interface{}{
					"error":      err.Error(),
					"session_id": payload.SessionID.String(),
				})
			} else {
				h.logger.Info("User logged out", map[string]interface{}{
					"user_id": payload.UserID,
				})
			}
		}
	}

	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
