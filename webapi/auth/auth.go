// Package auth exposes the registration and login endpoints.
package auth

import (
	authsvc "github.com/fintrack/fintrack/pkg/service/auth"
	"github.com/fintrack/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the public auth endpoints under /api/auth.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	group := app.Group("/api/auth")
	group.Post("/register", Register(authSvc))
	group.Post("/login", Login(authSvc))
}

// Register handles new user registration and returns the identity plus a
// fresh access token.
func Register(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c,
			common.CodeAuthFieldsMissing, "Username, email, and password are required.")
		if input == nil {
			return err
		}
		result, err := authSvc.Register(c.Context(), input.Username, input.Email, input.Password)
		if err != nil {
			return common.RespondError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "User registered successfully!", result)
	}
}

// Login authenticates a user by username and password.
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c,
			common.CodeAuthFieldsMissing, "Username and password are required.")
		if input == nil {
			return err
		}
		result, err := authSvc.Login(c.Context(), input.Username, input.Password)
		if err != nil {
			return common.RespondError(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Logged in successfully!", result)
	}
}
