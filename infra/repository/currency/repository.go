// Package currency reads the currencies reference table.
package currency

import (
	"context"

	infrarepo "github.com/fintrack/fintrack/infra/repository"
	"github.com/fintrack/fintrack/pkg/dto"
	"github.com/fintrack/fintrack/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) repository.CurrencyRepository {
	return &repo{db: db}
}

func (r *repo) ListActive(ctx context.Context) ([]*dto.CurrencyRead, error) {
	var rows []Currency
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("code").
		Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormError(err)
	}
	result := make([]*dto.CurrencyRead, 0, len(rows))
	for i := range rows {
		result = append(result, &dto.CurrencyRead{
			Code:   rows[i].Code,
			Name:   rows[i].Name,
			Symbol: rows[i].Symbol,
		})
	}
	return result, nil
}

func (r *repo) GetByCode(ctx context.Context, code string) (*dto.CurrencyRead, error) {
	var row Currency
	if err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&row).Error; err != nil {
		return nil, infrarepo.MapGormError(err)
	}
	return &dto.CurrencyRead{Code: row.Code, Name: row.Name, Symbol: row.Symbol}, nil
}
