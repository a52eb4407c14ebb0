package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sangam/bloodbank/internal/core/domain"
	"github.com/sangam/bloodbank/internal/core/ports"
)

type AuthService struct {
	userRepo ports.UserRepository
	sessions ports.SessionService
	logger   ports.LoggerPort
	cache    ports.CachePort
}

func NewAuthService(
	userRepo ports.UserRepository,
	sessions ports.SessionService,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
		cache:    cache,
	}
}

// Login checks the credentials and, on success, opens a session and
// returns its cookie token. A wrong password and an unknown email are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	cacheKey := fmt.Sprintf("user_email:%s", email)
	cachedData, err := s.cache.Get(cacheKey)
	var user *domain.User

	if err == nil {
		var cachedUser domain.User
		if err := json.Unmarshal(cachedData, &cachedUser); err == nil {
			user = &cachedUser
			s.logger.Debug("User found in email cache", map[string]interface{}{
				"email": email,
			})
		}
	}

	if user == nil {
		user, err = s.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			s.logger.Error("Failed to get user by email", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
			return "", nil, domain.ErrInvalidCredentials
		}

		if user == nil {
			return "", nil, domain.ErrInvalidCredentials
		}

		userData, err := json.Marshal(user)
		if err != nil {
			s.logger.Warn("Failed to marshal user for email cache", map[string]interface{}{
				"error": err.Error(),
				"email": email,
			})
		} else {
			if err := s.cache.Set(cacheKey, userData, 10*time.Minute); err != nil {
				s.logger.Warn("Failed to cache user by email", map[string]interface{}{
					"error": err.Error(),
					"email": email,
				})
			}
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("Invalid password attempt", map[string]interface{}{
			"email": email,
		})
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create session", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return "", nil, err
	}

	userResponse := *user
	userResponse.Password = ""
	return token, &userResponse, nil
}
