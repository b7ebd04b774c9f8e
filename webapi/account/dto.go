package account

// CreateAccountInput is the request body for POST /api/accounts/create.
// InitialBalance is a pointer so a zero balance still satisfies required.
type CreateAccountInput struct {
	AccountName    string   `json:"accountName" validate:"required,max=100"`
	CurrencyCode   string   `json:"currencyCode" validate:"required,len=3,alpha"`
	InitialBalance *float64 `json:"initialBalance" validate:"required"`
}

// UpdateBalanceInput is the request body for PUT /api/accounts/:id/balance.
type UpdateBalanceInput struct {
	NewBalance *float64 `json:"newBalance" validate:"required"`
}
