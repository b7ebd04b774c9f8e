package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountRead is the projection of an account row returned by queries.
type AccountRead struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	AccountName    string    `json:"accountName"`
	CurrencyCode   string    `json:"currencyCode"`
	InitialBalance float64   `json:"initialBalance"`
	CurrentBalance float64   `json:"currentBalance"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AccountCreate carries the fields persisted for a new account. The
// repository sets current_balance from InitialBalance in the same insert.
type AccountCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AccountName    string
	CurrencyCode   string
	InitialBalance float64
}

// AccountPage is one window of a user's accounts plus the totals the
// client needs for page arithmetic.
type AccountPage struct {
	Items       []*AccountRead `json:"items"`
	CurrentPage int            `json:"currentPage"`
	PageSize    int            `json:"pageSize"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int64          `json:"totalItems"`
}

// CurrencyRead is the public shape of a currency row.
type CurrencyRead struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
