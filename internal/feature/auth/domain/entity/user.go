// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role says what a signed-in user may do with the register. There are
// exactly two variants; access-control gates switch over them exhaustively
// instead of probing flags.
type Role int

const (
	// RoleViewer can read and search the register.
	RoleViewer Role = iota

	// RoleStaff can additionally create, edit, and delete records.
	RoleStaff
)

// String returns the role name for logging.
func (r Role) String() string {
	if r == RoleStaff {
		return "staff"
	}
	return "viewer"
}

// User represents an account that can sign in to the registry.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the unique login name.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext is never stored and the hash never leaves the server.
	Password string `gorm:"size:255;not null"`

	// FullName is the display name captured at registration.
	FullName string `gorm:"size:255;not null"`

	// IsStaff marks accounts with mutation privileges over the register.
	IsStaff bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role maps the persisted staff flag onto the two-variant role type.
func (u *User) Role() Role {
	if u.IsStaff {
		return RoleStaff
	}
	return RoleViewer
}
