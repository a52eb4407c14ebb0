package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sangam/bloodbank/internal/core/domain"
)

type PostgresDonorRepository struct {
	db *sql.DB
}

func NewDonorRepository(db *sql.DB) *PostgresDonorRepository {
	return &PostgresDonorRepository{
		db,
	}
}

func (r *PostgresDonorRepository) CreateDonor(ctx context.Context, donor *domain.DonorProfile) (*domain.DonorProfile, error) {
	query := `INSERT INTO donor_details (user_id, age, blood_group, contact_number, location, pincode, available)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		donor.UserID, donor.Age, donor.BloodGroup, donor.ContactNumber,
		donor.Location, donor.Pincode, donor.Available).Scan(
		&donor.ID,
		&donor.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// unique constraint on user_id
			return nil, domain.ErrDonorAlreadyRegistered
		}
		return nil, err
	}
	return donor, nil
}

func (r *PostgresDonorRepository) GetDonorByUserID(ctx context.Context, userID uuid.UUID) (*domain.DonorProfile, error) {
	query := `SELECT id, user_id, age, blood_group, contact_number, location, pincode, available, created_at
              FROM donor_details WHERE user_id = $1`

	donor := &domain.DonorProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&donor.ID,
		&donor.UserID,
		&donor.Age,
		&donor.BloodGroup,
		&donor.ContactNumber,
		&donor.Location,
		&donor.Pincode,
		&donor.Available,
		&donor.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return donor, nil
}

func (r *PostgresDonorRepository) SearchByPincode(ctx context.Context, bg domain.BloodGroup, pincode string) ([]domain.DonorContact, error) {
	query := `SELECT blood_group, contact_number, location, pincode
              FROM donor_details
              WHERE blood_group = $1 AND pincode = $2 AND available = TRUE`

	return r.searchContacts(ctx, query, string(bg), pincode)
}

func (r *PostgresDonorRepository) SearchByLocation(ctx context.Context, bg domain.BloodGroup, location string) ([]domain.DonorContact, error) {
	query := `SELECT blood_group, contact_number, location, pincode
              FROM donor_details
              WHERE blood_group = $1 AND location = $2 AND available = TRUE`

	return r.searchContacts(ctx, query, string(bg), location)
}

func (r *PostgresDonorRepository) searchContacts(ctx context.Context, query string, args ...interface{}) ([]domain.DonorContact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.DonorContact
	for rows.Next() {
		var c domain.DonorContact
		if err := rows.Scan(&c.BloodGroup, &c.ContactNumber, &c.Location, &c.Pincode); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}
