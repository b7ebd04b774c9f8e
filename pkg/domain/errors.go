package domain

import "errors"

// Generic persistence errors, produced by the repository layer.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Auth errors.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenMissing       = errors.New("authentication token is required")
	ErrTokenExpired       = errors.New("authentication token has expired")
	ErrTokenInvalid       = errors.New("invalid authentication token")
	ErrUserNotFound       = errors.New("user not found or token invalid")
)

// Account errors.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidBalance    = errors.New("initial balance must be a non-negative number")
	ErrInvalidCurrency   = errors.New("unknown or inactive currency code")
	ErrInvalidPagination = errors.New("page and limit must be positive integers")
)
