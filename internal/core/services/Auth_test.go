package services

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sangam/bloodbank/internal/core/domain"
)

func registerTestUser(t *testing.T, repo *fakeUserRepo, email, password string) *domain.User {
	t.Helper()
	us := NewUserService(repo, nopLogger{}, validator.New())
	user, err := us.Register(context.Background(), &domain.User{
		Name:     "Asha Patil",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := &fakeSessionService{}
	svc := NewAuthService(repo, sessions, nopLogger{}, newMemCache())

	created := registerTestUser(t, repo, "asha@example.com", "secret123")

	token, user, err := svc.Login(context.Background(), "asha@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, created.ID, user.ID)
	require.Equal(t, "Asha Patil", user.Name)
	require.Empty(t, user.Password, "credential hash must not leave the service")
	require.Equal(t, 1, sessions.createdCount())
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := &fakeSessionService{}
	svc := NewAuthService(repo, sessions, nopLogger{}, newMemCache())

	registerTestUser(t, repo, "asha@example.com", "secret123")

	_, _, err := svc.Login(context.Background(), "asha@example.com", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.Zero(t, sessions.createdCount(), "no session may be created on a failed login")
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := &fakeSessionService{}
	svc := NewAuthService(repo, sessions, nopLogger{}, newMemCache())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.Zero(t, sessions.createdCount())
}

func TestLoginUsesEmailCache(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := &fakeSessionService{}
	cache := newMemCache()
	svc := NewAuthService(repo, sessions, nopLogger{}, cache)

	registerTestUser(t, repo, "asha@example.com", "secret123")

	_, _, err := svc.Login(context.Background(), "asha@example.com", "secret123")
	require.NoError(t, err)

	// The user record is now cached by email; a second login succeeds
	// even if the repository has gone away.
	_, ok := cache.data["user_email:asha@example.com"]
	require.True(t, ok)

	repo.mu.Lock()
	repo.users = nil
	repo.mu.Unlock()

	_, _, err = svc.Login(context.Background(), "asha@example.com", "secret123")
	require.NoError(t, err)
}

func TestUserRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	us := NewUserService(repo, nopLogger{}, validator.New())

	user, err := us.Register(context.Background(), &domain.User{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEqual(t, "secret123", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	require.Equal(t, domain.AppUser, user.Role, "role defaults to the regular user role")
}

func TestUserRegisterValidation(t *testing.T) {
	repo := newFakeUserRepo()
	us := NewUserService(repo, nopLogger{}, validator.New())

	_, err := us.Register(context.Background(), &domain.User{
		Name:     "Ravi Kumar",
		Email:    "not-an-email",
		Password: "secret123",
	})
	require.Error(t, err)
	require.True(t, domain.IsValidation(err))

	_, err = us.Register(context.Background(), &domain.User{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	require.Error(t, err)
	require.True(t, domain.IsValidation(err))
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	us := NewUserService(repo, nopLogger{}, validator.New())

	_, err := us.Register(context.Background(), &domain.User{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = us.Register(context.Background(), &domain.User{
		Name:     "Someone Else",
		Email:    "ravi@example.com",
		Password: "other-pass",
	})
	require.ErrorIs(t, err, domain.ErrEmailExists)
}
