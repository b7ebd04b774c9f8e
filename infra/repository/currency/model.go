package currency

// Currency is the gorm model for the currencies reference table.
type Currency struct {
	Code     string `gorm:"primaryKey;size:3"`
	Name     string `gorm:"not null"`
	Symbol   string `gorm:"not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (Currency) TableName() string {
	return "currencies"
}
