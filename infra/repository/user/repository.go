// Package user is the GORM-backed identity store.
package user

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

func New(db *gorm.DB) repository.UserRepository {
	return &repo{db: db}
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormError(err)
	}
	return mapModelToDTO(&u), nil
}

func (r *repo) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, infrarepo.MapGormError(err)
	}
	return mapModelToDTO(&u), nil
}

func (r *repo) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, infrarepo.MapGormError(err)
	}
	return mapModelToDTO(&u), nil
}

func (r *repo) Create(ctx context.Context, create dto.UserCreate) error {
	u := User{
		ID:           create.ID,
		Username:     create.Username,
		Email:        create.Email,
		PasswordHash: create.PasswordHash,
	}
	return infrarepo.MapGormError(r.db.WithContext(ctx).Create(&u).Error)
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
