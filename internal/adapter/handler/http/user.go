package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangam/bloodbank/internal/core/domain"
	"github.com/sangam/bloodbank/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewUserHandler(
	userService ports.UserService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
		metrics:     metrics,
	}
}

func (h *UserHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register creates an account from the registration form and sends the
// user on to the login page. Duplicate emails and bad input re-render
// the form with an inline error.
func (h *UserHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user := &domain.User{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     domain.UserRole(c.PostForm("role")),
	}

	createdUser, err := h.userService.Register(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			h.logger.Info("Registration failed: duplicate email", map[string]interface{}{
				"email": user.Email,
			})
			c.HTML(http.StatusConflict, "register.html", gin.H{
				"error": "Email already registered",
			})
			return
		}
		if domain.IsValidation(err) {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"error": err.Error(),
			})
			return
		}

		h.logger.Error("Failed to register user", map[string]interface{}{
			"error": err.Error(),
			"email": user.Email,
		})
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"error": "Error during registration",
		})
		return
	}

	h.logger.Info("User created successfully", map[string]interface{}{
		"email":   createdUser.Email,
		"user_id": createdUser.ID,
	})

	c.Redirect(http.StatusFound, "/login")
}
