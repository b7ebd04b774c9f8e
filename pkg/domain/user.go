package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account holder. The password is stored only as a
// bcrypt digest; the plaintext never leaves the registration/login flow.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
