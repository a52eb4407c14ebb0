package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangam/bloodbank/internal/core/domain"
)

type DonorRepository interface {
	CreateDonor(ctx context.Context, donor *domain.DonorProfile) (*domain.DonorProfile, error)
	GetDonorByUserID(ctx context.Context, userID uuid.UUID) (*domain.DonorProfile, error)

	// Search methods match exactly on their key, only return available
	// donors, and project down to contact fields.
	SearchByPincode(ctx context.Context, bg domain.BloodGroup, pincode string) ([]domain.DonorContact, error)
	SearchByLocation(ctx context.Context, bg domain.BloodGroup, location string) ([]domain.DonorContact, error)
}

type DonorService interface {
	Register(ctx context.Context, donor *domain.DonorProfile) (*domain.DonorProfile, error)
	Search(ctx context.Context, bg domain.BloodGroup, location, pincode string) (*domain.SearchResult, error)
}
