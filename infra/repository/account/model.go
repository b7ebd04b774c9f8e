package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the gorm model for the accounts table. current_balance is
// written at creation and by UpdateBalance; nothing else touches it.
type Account struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	AccountName    string    `gorm:"not null;size:100"`
	CurrencyCode   string    `gorm:"not null;size:3"`
	InitialBalance float64   `gorm:"not null"`
	CurrentBalance float64   `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Account) TableName() string {
	return "accounts"
}
