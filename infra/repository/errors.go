// Package repository implements the persistence interfaces on GORM.
package repository

import (
	"errors"

	"github.com/fintrack/fintrack/pkg/domain"
	"gorm.io/gorm"
)

// MapGormError converts GORM errors into domain errors so database
// concerns stay inside the infrastructure layer. Walks the chain because
// GORM wraps driver errors.
func MapGormError(err error) error {
	if err == nil {
		return nil
	}
	for current := err; current != nil; current = errors.Unwrap(current) {
		switch {
		case errors.Is(current, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(current, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
	}
	return err
}
