// Package repository defines the persistence interfaces consumed by the
// services. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/fintrack/fintrack/pkg/dto"
	"github.com/google/uuid"
)

// UserRepository persists and looks up user records. Lookups return
// domain.ErrNotFound for absence rather than a nil row.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
	Create(ctx context.Context, create dto.UserCreate) error
}

// AccountRepository persists and queries financial accounts.
type AccountRepository interface {
	Create(ctx context.Context, create dto.AccountCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error)
	// ListByUserPaginated returns one window of the user's accounts ordered
	// newest first, plus the total count ignoring the window.
	ListByUserPaginated(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dto.AccountRead, int64, error)
	// UpdateBalance overwrites current_balance and refreshes updated_at; it
	// never touches initial_balance.
	UpdateBalance(ctx context.Context, id uuid.UUID, newBalance float64) error
}

// CurrencyRepository reads the currency reference table.
type CurrencyRepository interface {
	ListActive(ctx context.Context) ([]*dto.CurrencyRead, error)
	GetByCode(ctx context.Context, code string) (*dto.CurrencyRead, error)
}
