// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The name is the unique login identifier;
// the password hash never leaves the persistence and usecase layers.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // Unique display name, used as the login identifier.
	Email        string    // Contact email.
	Role         Role      // Either ADMIN or USER.
	PasswordHash string    // bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
