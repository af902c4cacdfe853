package domain

import "time"

// Role is the coarse privilege level carried by every account and token.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether the role is one of the enumerated values.
// Anything else (corrupted claim, foreign value) must be treated as
// no privilege at all.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is the domain model for registered authors.
type User struct {
	ID           string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
