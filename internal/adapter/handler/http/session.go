package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sangam/bloodbank/internal/core/domain"
	"github.com/sangam/bloodbank/internal/core/ports"
)

// SessionTokenService implements cookie sessions: the cookie value is a
// signed JWT carrying the login-time identity snapshot, and Redis keeps
// a live-session record under the session id. Verify requires both, so
// revoking the Redis record logs the session out everywhere at once.
type SessionTokenService struct {
	secretKey  []byte
	expiration time.Duration
	cache      ports.CachePort
	logger     ports.LoggerPort
}

func NewSessionTokenService(secretKey string, durationStr string, cache ports.CachePort, logger ports.LoggerPort) *SessionTokenService {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		logger.Error("Invalid session duration, using default 24h", map[string]interface{}{
			"duration": durationStr,
			"error":    err.Error(),
		})
		duration = 24 * time.Hour
	}

	return &SessionTokenService{
		secretKey:  []byte(secretKey),
		expiration: duration,
		cache:      cache,
		logger:     logger,
	}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *SessionTokenService) Create(ctx context.Context, user *domain.User) (string, error) {
	sessionID, err := uuid.NewRandom()
	if err != nil {
		s.logger.Error("Failed to generate session id", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return "", err
	}

	issuedAt := time.Now()
	expiredAt := issuedAt.Add(s.expiration)

	claims := jwt.MapClaims{
		"sid":     sessionID.String(),
		"user_id": user.ID.String(),
		"name":    user.Name,
		"role":    string(user.Role),
		"iat":     issuedAt.Unix(),
		"exp":     expiredAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(sessionKey(sessionID), []byte(user.ID.String()), s.expiration); err != nil {
		s.logger.Error("Failed to store session record", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID.String(),
		})
		return "", err
	}

	return signed, nil
}

func (s *SessionTokenService) Verify(ctx context.Context, token string) (domain.SessionPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return domain.SessionPayload{}, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return domain.SessionPayload{}, errors.New("invalid session claims")
	}

	sidStr, ok := claims["sid"].(string)
	if !ok {
		return domain.SessionPayload{}, errors.New("invalid session id claim")
	}
	sessionID, err := uuid.Parse(sidStr)
	if err != nil {
		return domain.SessionPayload{}, errors.New("invalid session id claim")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return domain.SessionPayload{}, errors.New("invalid user_id claim")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return domain.SessionPayload{}, errors.New("invalid user_id claim")
	}

	name, ok := claims["name"].(string)
	if !ok {
		return domain.SessionPayload{}, errors.New("invalid name claim")
	}

	roleClaimed, ok := claims["role"].(string)
	if !ok {
		return domain.SessionPayload{}, errors.New("invalid role claim")
	}
	role := domain.UserRole(roleClaimed)
	if !domain.ValidUserRole(role) {
		s.logger.Warn("Invalid role in session token", map[string]interface{}{
			"role": roleClaimed,
		})
		return domain.SessionPayload{}, errors.New("invalid role value")
	}

	// Logged-out sessions have no live record even when the signature
	// still checks out.
	if _, err := s.cache.Get(sessionKey(sessionID)); err != nil {
		return domain.SessionPayload{}, errors.New("session revoked or expired")
	}

	return domain.SessionPayload{
		SessionID: sessionID,
		UserID:    userID,
		Name:      name,
		Role:      role,
	}, nil
}

func (s *SessionTokenService) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	return s.cache.Delete(sessionKey(sessionID))
}

var _ ports.SessionService = (*SessionTokenService)(nil)
