package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an account holder. Email is the external identity: an opaque,
// case-sensitive string stored exactly as received (no trimming, no
// lowercasing), unique at the store.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       int64     `json:"-"`
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is a named grant. Roles are created on first reference and never
// deleted by the service.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
