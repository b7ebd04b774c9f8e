package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the request body into T and validates it. On
// failure it writes a 400 with the given missing-fields code and message
// and returns nil, so callers just return the error as-is.
func BindAndValidate[T any](c *fiber.Ctx, code, message string) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, RespondCode(c, fiber.StatusBadRequest, code, message)
	}
	if err := validate.Struct(input); err != nil {
		return nil, RespondCode(c, fiber.StatusBadRequest, code, message)
	}
	return &input, nil
}
