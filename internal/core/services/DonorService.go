package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/sangam/bloodbank/internal/core/domain"
	"github.com/sangam/bloodbank/internal/core/ports"
)

var contactNumberRe = regexp.MustCompile(`^\d{10}$`)

const (
	msgFoundNearPincode = "Donors found near your pincode"
	msgFoundInLocation  = "Donors found in your location"
	msgNoneAvailable    = "No donors available right now"
)

type DonorService struct {
	repo   ports.DonorRepository
	logger ports.LoggerPort
}

func NewDonorService(repo ports.DonorRepository, logger ports.LoggerPort) *DonorService {
	return &DonorService{
		repo:   repo,
		logger: logger,
	}
}

// Register validates and persists a donor profile for donor.UserID.
// Checks run in a fixed order and the first failure wins; nothing is
// written unless every check passes. The database unique constraint on
// user_id backstops the duplicate pre-check, so two concurrent
// registrations for one user still produce exactly one profile.
func (ds *DonorService) Register(ctx context.Context, donor *domain.DonorProfile) (*domain.DonorProfile, error) {
	if donor.Age < 18 {
		return nil, domain.ErrDonorAgeTooLow
	}
	if !domain.ValidBloodGroup(donor.BloodGroup) {
		return nil, domain.ErrInvalidBloodGroup
	}
	if !contactNumberRe.MatchString(donor.ContactNumber) {
		return nil, domain.ErrInvalidContactNumber
	}

	existing, err := ds.repo.GetDonorByUserID(ctx, donor.UserID)
	if err != nil {
		ds.logger.Error("Failed to check existing donor profile", map[string]interface{}{
			"error":   err.Error(),
			"user_id": donor.UserID,
		})
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDonorAlreadyRegistered
	}

	donor.Available = true
	created, err := ds.repo.CreateDonor(ctx, donor)
	if err != nil {
		if errors.Is(err, domain.ErrDonorAlreadyRegistered) {
			return nil, err
		}
		ds.logger.Error("Failed to save donor profile", map[string]interface{}{
			"error":   err.Error(),
			"user_id": donor.UserID,
		})
		return nil, err
	}

	ds.logger.Info("Donor profile registered", map[string]interface{}{
		"user_id":     created.UserID,
		"blood_group": created.BloodGroup,
		"pincode":     created.Pincode,
	})
	return created, nil
}

// Search resolves a donor search with pincode taking strict priority:
// any pincode hit returns without consulting the location, and the two
// criteria are never combined. Zero matches is a success with an
// explanatory message, not an error.
func (ds *DonorService) Search(ctx context.Context, bg domain.BloodGroup, location, pincode string) (*domain.SearchResult, error) {
	location = strings.TrimSpace(location)
	pincode = strings.TrimSpace(pincode)

	if bg == "" {
		return nil, domain.ErrBloodGroupRequired
	}
	if pincode == "" && location == "" {
		return nil, domain.ErrSearchCriteriaRequired
	}

	if pincode != "" {
		donors, err := ds.repo.SearchByPincode(ctx, bg, pincode)
		if err != nil {
			ds.logger.Error("Pincode search failed", map[string]interface{}{
				"error":       err.Error(),
				"blood_group": bg,
				"pincode":     pincode,
			})
			return nil, err
		}
		if len(donors) > 0 {
			return &domain.SearchResult{
				Donors:  donors,
				Message: msgFoundNearPincode,
			}, nil
		}
	}

	donors, err := ds.repo.SearchByLocation(ctx, bg, location)
	if err != nil {
		ds.logger.Error("Location search failed", map[string]interface{}{
			"error":       err.Error(),
			"blood_group": bg,
			"location":    location,
		})
		return nil, err
	}

	if len(donors) == 0 {
		return &domain.SearchResult{
			Donors:  []domain.DonorContact{},
			Message: msgNoneAvailable,
		}, nil
	}

	return &domain.SearchResult{
		Donors:  donors,
		Message: msgFoundInLocation,
	}, nil
}
