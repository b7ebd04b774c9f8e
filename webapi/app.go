// Package webapi assembles the Fiber application: middleware, routes, and
// the top-level error handling.
package webapi

import (
	"log/slog"

	"github.com/fintrack/fintrack/pkg/config"
	accountsvc "github.com/fintrack/fintrack/pkg/service/account"
	authsvc "github.com/fintrack/fintrack/pkg/service/auth"
	currencysvc "github.com/fintrack/fintrack/pkg/service/currency"
	"github.com/fintrack/fintrack/webapi/account"
	"github.com/fintrack/fintrack/webapi/auth"
	"github.com/fintrack/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Cfg         *config.App
	AuthSvc     *authsvc.Service
	AccountSvc  *accountsvc.Service
	CurrencySvc *currencysvc.Service
	Logger      *slog.Logger
}

// New builds the Fiber app with all routes registered. Unexpected errors
// reach the app-level handler, which logs full detail and returns the
// generic envelope; outside development the detail never reaches clients.
func New(deps Deps) *fiber.App {
	development := deps.Cfg.Env == "development"
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			deps.Logger.Error("unhandled error", "path", c.Path(), "error", err)
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			message := "Internal server error."
			if development {
				message = err.Error()
			}
			return common.RespondCode(c, status, common.CodeInternalError, message)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Financial Management App API!")
	})

	auth.Routes(app, deps.AuthSvc)
	account.Routes(app, deps.AccountSvc, deps.CurrencySvc, deps.AuthSvc, deps.Cfg)

	// Fallback for unmatched routes, kept last.
	app.Use(func(c *fiber.Ctx) error {
		return common.RespondCode(c, fiber.StatusNotFound,
			common.CodeResourceNotFound, "Endpoint not found.")
	})

	return app
}
