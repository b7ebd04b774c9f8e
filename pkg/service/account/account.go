// Package account holds the ledger logic around financial accounts:
// creation with the balance invariant, paginated listing, and balance
// updates.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fintrack/fintrack/pkg/domain"
	"github.com/fintrack/fintrack/pkg/dto"
	"github.com/fintrack/fintrack/pkg/repository"
	"github.com/google/uuid"
)

type Service struct {
	accounts   repository.AccountRepository
	currencies repository.CurrencyRepository
	logger     *slog.Logger
}

func New(
	accounts repository.AccountRepository,
	currencies repository.CurrencyRepository,
	logger *slog.Logger,
) *Service {
	return &Service{accounts: accounts, currencies: currencies, logger: logger}
}

// Create opens a new account for userID. The currency code is normalized
// to uppercase and must name an active currency; the initial balance must
// be non-negative. current_balance is set from initial_balance in the same
// insert, which is the only place the two are coupled.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	name, currencyCode string,
	initialBalance float64,
) (*dto.AccountRead, error) {
	log := s.logger.With("context", "CreateAccount", "userID", userID)
	log.Debug("CreateAccount called", "currency", currencyCode)

	if initialBalance < 0 {
		return nil, domain.ErrInvalidBalance
	}
	code := strings.ToUpper(currencyCode)
	if _, err := s.currencies.GetByCode(ctx, code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCurrency
		}
		return nil, fmt.Errorf("checking currency: %w", err)
	}

	id := uuid.New()
	err := s.accounts.Create(ctx, dto.AccountCreate{
		ID:             id,
		UserID:         userID,
		AccountName:    name,
		CurrencyCode:   code,
		InitialBalance: initialBalance,
	})
	if err != nil {
		log.Error("CreateAccount failed", "error", err)
		return nil, fmt.Errorf("creating account: %w", err)
	}

	a, err := s.accounts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading back account: %w", err)
	}
	log.Info("CreateAccount successful", "accountID", id)
	return a, nil
}

// Get returns one of the user's accounts. An account owned by somebody
// else reports not-found rather than forbidden, so account IDs are not an
// existence oracle across users.
func (s *Service) Get(ctx context.Context, userID, accountID uuid.UUID) (*dto.AccountRead, error) {
	a, err := s.accounts.Get(ctx, accountID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching account: %w", err)
	}
	if a.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

// List returns all of a user's accounts without pagination.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	return s.accounts.ListByUser(ctx, userID)
}

// ListPaginated returns the requested page of a user's accounts, newest
// first. Page and limit must both be positive.
func (s *Service) ListPaginated(
	ctx context.Context,
	userID uuid.UUID,
	page, limit int,
) (*dto.AccountPage, error) {
	if page < 1 || limit < 1 {
		return nil, domain.ErrInvalidPagination
	}
	offset := (page - 1) * limit
	items, total, err := s.accounts.ListByUserPaginated(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("ListAccounts failed", "userID", userID, "error", err)
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dto.AccountPage{
		Items:       items,
		CurrentPage: page,
		PageSize:    limit,
		TotalPages:  totalPages,
		TotalItems:  total,
	}, nil
}

// UpdateBalance overwrites the current balance of one of the user's
// accounts. No overdraft policy is enforced here; initial_balance is never
// touched.
func (s *Service) UpdateBalance(
	ctx context.Context,
	userID, accountID uuid.UUID,
	newBalance float64,
) (*dto.AccountRead, error) {
	if _, err := s.Get(ctx, userID, accountID); err != nil {
		return nil, err
	}
	if err := s.accounts.UpdateBalance(ctx, accountID, newBalance); err != nil {
		s.logger.Error("UpdateBalance failed", "accountID", accountID, "error", err)
		return nil, fmt.Errorf("updating balance: %w", err)
	}
	return s.Get(ctx, userID, accountID)
}
