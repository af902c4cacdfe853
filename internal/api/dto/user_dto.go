package dto

import "time"

// UserResponse serialized account. The password hash never leaves the
// service boundary.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
