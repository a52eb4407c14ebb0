package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangam/bloodbank/internal/core/domain"
)

// SessionService issues and checks the signed session cookie tokens.
// Verify fails for tampered, expired, or revoked sessions.
type SessionService interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	Verify(ctx context.Context, token string) (domain.SessionPayload, error)
	Revoke(ctx context.Context, sessionID uuid.UUID) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
