package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/sangam/bloodbank/internal/core/domain"
	"github.com/sangam/bloodbank/internal/core/ports"
)

type UserService struct {
	repo     ports.UserRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewUserService(
	repo ports.UserRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *UserService {
	return &UserService{
		repo:     repo,
		logger:   logger,
		validate: validate,
	}
}

// Register creates a user account. The password is stored only as a
// bcrypt hash. Role defaults to the regular user role when unset.
func (us *UserService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Role == "" {
		user.Role = domain.AppUser
	}
	if !domain.ValidUserRole(user.Role) {
		return nil, domain.NewValidationError("invalid role")
	}

	if err := us.validate.Struct(user); err != nil {
		us.logger.Error("Validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, domain.NewValidationError(fmt.Sprintf("validation failed: %s", err.Error()))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		us.logger.Error("Error during hashing", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}
	user.Password = string(hashedPassword)

	user, err = us.repo.CreateUser(ctx, user)
	if err != nil {
		us.logger.Error("Failed to create user in database", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}
	return user, nil
}
