// Package middleware gates protected routes behind a bearer token and
// attaches the resolved identity to the request.
package middleware

import (
	"errors"

	"github.com/fintrack/fintrack/pkg/config"
	"github.com/fintrack/fintrack/pkg/dto"
	authsvc "github.com/fintrack/fintrack/pkg/service/auth"
	"github.com/fintrack/fintrack/pkg/token"
	"github.com/fintrack/fintrack/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// currentUserKey is where CurrentUser stores the resolved identity.
const currentUserKey = "currentUser"

// JwtProtected verifies the Authorization bearer token's signature and
// expiry. Failures short-circuit with 401 and a code that distinguishes
// missing, expired, and malformed tokens.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
		return common.RespondCode(c, fiber.StatusUnauthorized,
			common.CodeTokenMissing, "Authentication token is required.")
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.RespondCode(c, fiber.StatusUnauthorized,
			common.CodeTokenExpired, "Authentication token has expired. Please log in again.")
	default:
		return common.RespondCode(c, fiber.StatusUnauthorized,
			common.CodeTokenInvalid, "Invalid authentication token. Please log in again.")
	}
}

// CurrentUser resolves the verified token's claims against the user store
// and attaches the identity for downstream handlers. Must run after
// JwtProtected.
func CurrentUser(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.RespondCode(c, fiber.StatusUnauthorized,
				common.CodeUnauthorized, "Unauthorized: missing user context.")
		}
		payload, err := token.PayloadFromToken(t)
		if err != nil {
			return common.RespondError(c, err)
		}
		u, err := authSvc.CurrentUser(c.Context(), payload)
		if err != nil {
			return common.RespondError(c, err)
		}
		c.Locals(currentUserKey, u)
		return c.Next()
	}
}

// UserFromContext returns the identity attached by CurrentUser.
func UserFromContext(c *fiber.Ctx) (*dto.UserRead, bool) {
	u, ok := c.Locals(currentUserKey).(*dto.UserRead)
	return u, ok
}
