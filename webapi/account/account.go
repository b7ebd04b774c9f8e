// Package account exposes the account endpoints: creation, listing with
// pagination, single lookup, balance update, and the public currency list.
package account

import (
	"strconv"

	"github.com/fintrack/fintrack/pkg/config"
	"github.com/fintrack/fintrack/pkg/middleware"
	accountsvc "github.com/fintrack/fintrack/pkg/service/account"
	authsvc "github.com/fintrack/fintrack/pkg/service/auth"
	currencysvc "github.com/fintrack/fintrack/pkg/service/currency"
	"github.com/fintrack/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the account endpoints under /api/accounts. The currency
// listing is public; everything else requires a bearer token.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	currencySvc *currencysvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	identity := middleware.CurrentUser(authSvc)

	group := app.Group("/api/accounts")
	group.Get("/currencies", ListCurrencies(currencySvc))
	group.Post("/create", jwt, identity, CreateAccount(accountSvc))
	group.Get("/", jwt, identity, ListAccounts(accountSvc))
	group.Get("/:id", jwt, identity, GetAccount(accountSvc))
	group.Put("/:id/balance", jwt, identity, UpdateBalance(accountSvc))
}

// CreateAccount opens a new account for the authenticated user.
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return common.RespondCode(c, fiber.StatusUnauthorized,
				common.CodeUnauthorized, "Unauthorized: User ID not found in token.")
		}
		input, err := common.BindAndValidate[CreateAccountInput](c,
			common.CodeAccountFieldsMissing,
			"Account name, currency code, and initial balance are required.")
		if input == nil {
			return err
		}
		a, err := accountSvc.Create(
			c.Context(), user.ID, input.AccountName, input.CurrencyCode, *input.InitialBalance)
		if err != nil {
			return common.RespondError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Account created successfully!", a)
	}
}

// ListAccounts returns one page of the authenticated user's accounts.
// Query params page and limit default to 1 and 10.
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return common.RespondCode(c, fiber.StatusUnauthorized,
				common.CodeUnauthorized, "Unauthorized.")
		}
		page := queryInt(c, "page", 1)
		limit := queryInt(c, "limit", 10)
		result, err := accountSvc.ListPaginated(c.Context(), user.ID, page, limit)
		if err != nil {
			return common.RespondError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Accounts retrieved successfully!", result)
	}
}

// GetAccount returns a single account owned by the authenticated user.
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return common.RespondCode(c, fiber.StatusUnauthorized,
				common.CodeUnauthorized, "Unauthorized.")
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.RespondCode(c, fiber.StatusNotFound,
				common.CodeAccountNotFound, "Account not found.")
		}
		a, err := accountSvc.Get(c.Context(), user.ID, id)
		if err != nil {
			return common.RespondError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Account retrieved successfully!", a)
	}
}

// UpdateBalance overwrites the current balance of an owned account.
func UpdateBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			return common.RespondCode(c, fiber.StatusUnauthorized,
				common.CodeUnauthorized, "Unauthorized.")
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.RespondCode(c, fiber.StatusNotFound,
				common.CodeAccountNotFound, "Account not found.")
		}
		input, err := common.BindAndValidate[UpdateBalanceInput](c,
			common.CodeAccountFieldsMissing, "New balance is required.")
		if input == nil {
			return err
		}
		a, err := accountSvc.UpdateBalance(c.Context(), user.ID, id, *input.NewBalance)
		if err != nil {
			return common.RespondError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Balance updated successfully!", a)
	}
}

// ListCurrencies returns the active currencies for clients to choose from.
func ListCurrencies(currencySvc *currencysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		currencies, err := currencySvc.ListActive(c.Context())
		if err != nil {
			return common.RespondError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Currencies retrieved successfully!", currencies)
	}
}

// queryInt parses a positive query param, falling back to def when absent.
// Explicit non-positive or garbage values are passed through as-is so the
// service can reject them.
func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
