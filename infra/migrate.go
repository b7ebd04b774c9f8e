package infra

import (
	accountrepo "github.com/fintrack/fintrack/infra/repository/account"
	currencyrepo "github.com/fintrack/fintrack/infra/repository/currency"
	userrepo "github.com/fintrack/fintrack/infra/repository/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultCurrencies is the seed set for the currencies reference table.
var defaultCurrencies = []currencyrepo.Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", IsActive: true},
	{Code: "EUR", Name: "Euro", Symbol: "€", IsActive: true},
	{Code: "GBP", Name: "British Pound", Symbol: "£", IsActive: true},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", IsActive: true},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫", IsActive: true},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", IsActive: true},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", IsActive: true},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", IsActive: true},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", IsActive: true},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", IsActive: true},
}

// Migrate creates the schema and seeds the currency reference data.
// Seeding is idempotent; existing rows are left untouched.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.User{},
		&accountrepo.Account{},
		&currencyrepo.Currency{},
	); err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaultCurrencies).Error
}
