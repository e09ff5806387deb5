package model

import "time"

// Role defines what a user is allowed to do. Roles are assigned
// out-of-band (directly in the database), never through the API.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account able to submit boost orders.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may access the review workflow.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
