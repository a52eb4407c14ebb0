package domain

import "errors"

// ValidationError marks user-correctable input failures. Handlers render
// the message as-is; nothing internal leaks through it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a user-correctable input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Donor registration failures, in the order the checks run.
var (
	ErrDonorAgeTooLow       = NewValidationError("donor age must be 18 or above")
	ErrInvalidBloodGroup    = NewValidationError("invalid blood group")
	ErrInvalidContactNumber = NewValidationError("invalid contact number")
)

// Donor search precondition failures.
var (
	ErrBloodGroupRequired     = NewValidationError("please select a blood group")
	ErrSearchCriteriaRequired = NewValidationError("please enter pincode or location")
)

// Conflict and authentication failures.
var (
	ErrDonorAlreadyRegistered = errors.New("you have already registered as a donor")
	ErrEmailExists            = errors.New("email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrNotFound               = errors.New("not found")
)
