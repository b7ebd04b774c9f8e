// Package common holds the response envelopes and the single place where
// domain errors are translated to HTTP status codes and taxonomy codes.
package common

import (
	"errors"

	"github.com/fintrack/fintrack/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// Response is the success envelope for every endpoint.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the error envelope: a stable machine-readable code plus
// a human-readable message.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Machine-readable error codes shared with clients.
const (
	CodeAuthFieldsMissing    = "AUTH_REQUIRED_FIELDS_MISSING"
	CodeUsernameTaken        = "AUTH_USERNAME_TAKEN"
	CodeEmailRegistered      = "AUTH_EMAIL_REGISTERED"
	CodeInvalidCredentials   = "AUTH_INVALID_CREDENTIALS"
	CodeTokenMissing         = "AUTH_TOKEN_MISSING"
	CodeTokenExpired         = "AUTH_TOKEN_EXPIRED"
	CodeTokenInvalid         = "AUTH_TOKEN_INVALID"
	CodeUserNotFound         = "AUTH_USER_NOT_FOUND"
	CodeUnauthorized         = "AUTH_UNAUTHORIZED"
	CodeAccountFieldsMissing = "ACCOUNT_REQUIRED_FIELDS_MISSING"
	CodeInvalidBalance       = "ACCOUNT_INVALID_BALANCE"
	CodeInvalidCurrency      = "ACCOUNT_INVALID_CURRENCY"
	CodeAccountNotFound      = "ACCOUNT_NOT_FOUND"
	CodeInvalidPagination    = "INVALID_PAGINATION_PARAMS"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeInternalError        = "INTERNAL_SERVER_ERROR"
)

// errorTaxonomy maps domain errors to their wire representation. Translated
// once here at the boundary; services never pick status codes.
var errorTaxonomy = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUsernameTaken, fiber.StatusConflict, CodeUsernameTaken},
	{domain.ErrEmailRegistered, fiber.StatusConflict, CodeEmailRegistered},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, CodeInvalidCredentials},
	{domain.ErrTokenMissing, fiber.StatusUnauthorized, CodeTokenMissing},
	{domain.ErrTokenExpired, fiber.StatusUnauthorized, CodeTokenExpired},
	{domain.ErrTokenInvalid, fiber.StatusUnauthorized, CodeTokenInvalid},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, CodeUserNotFound},
	{domain.ErrInvalidBalance, fiber.StatusBadRequest, CodeInvalidBalance},
	{domain.ErrInvalidCurrency, fiber.StatusBadRequest, CodeInvalidCurrency},
	{domain.ErrAccountNotFound, fiber.StatusNotFound, CodeAccountNotFound},
	{domain.ErrInvalidPagination, fiber.StatusBadRequest, CodeInvalidPagination},
}

// SuccessJSON writes the success envelope with the given status.
func SuccessJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// RespondCode writes the error envelope for an explicit status and code.
func RespondCode(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorResponse{Status: status, Code: code, Message: message})
}

// RespondError translates err through the taxonomy. Unrecognized errors
// become a generic 500 so internals never leak to clients.
func RespondError(c *fiber.Ctx, err error) error {
	for _, entry := range errorTaxonomy {
		if errors.Is(err, entry.err) {
			return RespondCode(c, entry.status, entry.code, entry.err.Error())
		}
	}
	return RespondCode(c, fiber.StatusInternalServerError, CodeInternalError,
		"Internal server error.")
}
