package domain

import (
	"time"

	"github.com/google/uuid"
)

type BloodGroup string

const (
	APositive  BloodGroup = "A+"
	ANegative  BloodGroup = "A-"
	BPositive  BloodGroup = "B+"
	BNegative  BloodGroup = "B-"
	OPositive  BloodGroup = "O+"
	ONegative  BloodGroup = "O-"
	ABPositive BloodGroup = "AB+"
	ABNegative BloodGroup = "AB-"
)

var bloodGroups = map[BloodGroup]struct{}{
	APositive: {}, ANegative: {},
	BPositive: {}, BNegative: {},
	OPositive: {}, ONegative: {},
	ABPositive: {}, ABNegative: {},
}

// ValidBloodGroup reports whether bg is one of the eight recognized groups.
func ValidBloodGroup(bg BloodGroup) bool {
	_, ok := bloodGroups[bg]
	return ok
}

// DonorProfile is a user's donation eligibility record. At most one
// profile exists per user.
type DonorProfile struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Age           int        `json:"age"`
	BloodGroup    BloodGroup `json:"blood_group"`
	ContactNumber string     `json:"contact_number"`
	Location      string     `json:"location"`
	Pincode       string     `json:"pincode"`
	Available     bool       `json:"available"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DonorContact is the projection of a donor profile shown to searchers.
// Identity fields (id, user_id, age, availability) stay private.
type DonorContact struct {
	BloodGroup    BloodGroup `json:"blood_group"`
	ContactNumber string     `json:"contact_number"`
	Location      string     `json:"location"`
	Pincode       string     `json:"pincode"`
}

// SearchResult carries the donor list together with the message the
// search view renders alongside it.
type SearchResult struct {
	Donors  []DonorContact `json:"donors"`
	Message string         `json:"message"`
}
