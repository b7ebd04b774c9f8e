// Package currency serves the read-only currency reference data.
package currency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrack/fintrack/pkg/dto"
	"github.com/fintrack/fintrack/pkg/repository"
)

type Service struct {
	currencies repository.CurrencyRepository
	logger     *slog.Logger
}

func New(currencies repository.CurrencyRepository, logger *slog.Logger) *Service {
	return &Service{currencies: currencies, logger: logger}
}

// ListActive returns every active currency as {code, name, symbol}.
func (s *Service) ListActive(ctx context.Context) ([]*dto.CurrencyRead, error) {
	list, err := s.currencies.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive failed", "error", err)
		return nil, fmt.Errorf("listing currencies: %w", err)
	}
	return list, nil
}
