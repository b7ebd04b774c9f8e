// Package account is the GORM-backed account ledger store.
package account

import (
	"context"

	infrarepo "github.com/fintrack/fintrack/infra/repository"
	"github.com/fintrack/fintrack/pkg/dto"
	"github.com/fintrack/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) repository.AccountRepository {
	return &repo{db: db}
}

// Create inserts the account row with current_balance seeded from the
// initial balance, so the invariant holds from the first write.
func (r *repo) Create(ctx context.Context, create dto.AccountCreate) error {
	a := Account{
		ID:             create.ID,
		UserID:         create.UserID,
		AccountName:    create.AccountName,
		CurrencyCode:   create.CurrencyCode,
		InitialBalance: create.InitialBalance,
		CurrentBalance: create.InitialBalance,
	}
	return infrarepo.MapGormError(r.db.WithContext(ctx).Create(&a).Error)
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var a Account
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormError(err)
	}
	return mapModelToDTO(&a), nil
}

func (r *repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&accts).Error; err != nil {
		return nil, infrarepo.MapGormError(err)
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

func (r *repo) ListByUserPaginated(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*dto.AccountRead, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Account{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, infrarepo.MapGormError(err)
	}

	var accts []Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&accts).Error; err != nil {
		return nil, 0, infrarepo.MapGormError(err)
	}

	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, total, nil
}

// UpdateBalance is one UPDATE touching current_balance only; gorm
// refreshes updated_at with it.
func (r *repo) UpdateBalance(ctx context.Context, id uuid.UUID, newBalance float64) error {
	return infrarepo.MapGormError(
		r.db.WithContext(ctx).Model(&Account{}).
			Where("id = ?", id).
			Update("current_balance", newBalance).Error,
	)
}

func mapModelToDTO(a *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:             a.ID,
		UserID:         a.UserID,
		AccountName:    a.AccountName,
		CurrencyCode:   a.CurrencyCode,
		InitialBalance: a.InitialBalance,
		CurrentBalance: a.CurrentBalance,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
