package models

import "github.com/google/uuid"

// Roles supplied by the identity provider. The core trusts the
// authenticated principal's role as-is.
const (
	RoleUser   = "user"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// Actor is the authenticated principal performing an operation.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

// IsAdmin reports whether the actor belongs to the elevated-privilege class.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
