package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a financial account owned by a user. CurrentBalance starts
// equal to InitialBalance and is only ever changed through explicit
// balance updates.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AccountName    string
	CurrencyCode   string
	InitialBalance float64
	CurrentBalance float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Currency is read-only reference data used to validate account currency
// codes and to populate the public currency listing.
type Currency struct {
	Code     string
	Name     string
	Symbol   string
	IsActive bool
}
