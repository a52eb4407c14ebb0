package domain

import (
	"github.com/google/uuid"
)

// SessionPayload is the identity snapshot captured at login time and
// carried by the session cookie for the lifetime of the session.
type SessionPayload struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	Name      string
	Role      UserRole
}
