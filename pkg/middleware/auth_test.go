package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrack/fintrack/pkg/config"
	"github.com/fintrack/fintrack/pkg/middleware"
	"github.com/fintrack/fintrack/pkg/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(cfg *config.Jwt) *fiber.App {
	app := fiber.New()
	app.Use(middleware.JwtProtected(cfg))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func request(t *testing.T, app *fiber.App, bearer string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJwtProtected_MissingToken(t *testing.T) {
	t.Parallel()
	app := newProtectedApp(&config.Jwt{Secret: "secret", Expiry: time.Hour})

	resp := request(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtProtected_InvalidToken(t *testing.T) {
	t.Parallel()
	app := newProtectedApp(&config.Jwt{Secret: "secret", Expiry: time.Hour})

	resp := request(t, app, "garbage.token.value")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtProtected_ValidToken(t *testing.T) {
	t.Parallel()
	cfg := &config.Jwt{Secret: "secret", Expiry: time.Hour}
	app := newProtectedApp(cfg)

	signed, err := token.New(cfg).Issue(token.Payload{ID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	resp := request(t, app, signed)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtProtected_ExpiredToken(t *testing.T) {
	t.Parallel()
	cfg := &config.Jwt{Secret: "secret", Expiry: time.Hour}
	app := newProtectedApp(cfg)

	signed, err := token.New(&config.Jwt{Secret: "secret", Expiry: -time.Minute}).
		Issue(token.Payload{ID: uuid.New()})
	require.NoError(t, err)

	resp := request(t, app, signed)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
