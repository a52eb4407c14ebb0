package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sangam/bloodbank/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{}) {}

func (nopLogger) Error(string, map[string]interface{}) {}

func (nopLogger) Debug(string, map[string]interface{}) {}

func (nopLogger) Warn(string, map[string]interface{}) {}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return v, nil
}

func (c *memCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type fakeDonorRepo struct {
	mu     sync.Mutex
	donors []domain.DonorProfile
}

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{}
}

func (r *fakeDonorRepo) CreateDonor(_ context.Context, donor *domain.DonorProfile) (*domain.DonorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.donors {
		if d.UserID == donor.UserID {
			return nil, domain.ErrDonorAlreadyRegistered
		}
	}
	donor.ID = uuid.New()
	donor.CreatedAt = time.Now()
	r.donors = append(r.donors, *donor)
	return donor, nil
}

func (r *fakeDonorRepo) GetDonorByUserID(_ context.Context, userID uuid.UUID) (*domain.DonorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.donors {
		if d.UserID == userID {
			found := d
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeDonorRepo) SearchByPincode(_ context.Context, bg domain.BloodGroup, pincode string) ([]domain.DonorContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DonorContact
	for _, d := range r.donors {
		if d.BloodGroup == bg && d.Pincode == pincode && d.Available {
			out = append(out, contactOf(d))
		}
	}
	return out, nil
}

func (r *fakeDonorRepo) SearchByLocation(_ context.Context, bg domain.BloodGroup, location string) ([]domain.DonorContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DonorContact
	for _, d := range r.donors {
		if d.BloodGroup == bg && d.Location == location && d.Available {
			out = append(out, contactOf(d))
		}
	}
	return out, nil
}

func (r *fakeDonorRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.donors)
}

func contactOf(d domain.DonorProfile) domain.DonorContact {
	return domain.DonorContact{
		BloodGroup:    d.BloodGroup,
		ContactNumber: d.ContactNumber,
		Location:      d.Location,
		Pincode:       d.Pincode,
	}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users = append(r.users, *user)
	return user, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

type fakeSessionService struct {
	mu      sync.Mutex
	created int
	revoked []uuid.UUID
}

func (s *fakeSessionService) Create(_ context.Context, user *domain.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created++
	return "session-token-" + user.ID.String(), nil
}

func (s *fakeSessionService) Verify(_ context.Context, _ string) (domain.SessionPayload, error) {
	return domain.SessionPayload{}, errors.New("not implemented")
}

func (s *fakeSessionService) Revoke(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked = append(s.revoked, id)
	return nil
}

func (s *fakeSessionService) createdCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created
}
