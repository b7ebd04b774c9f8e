package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRead is the read-optimized projection of a user row handed to
// services and handlers. PasswordHash is populated only by lookups that
// feed credential verification.
type UserRead struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserCreate carries the fields persisted for a new user.
type UserCreate struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
}
