// Package testutils builds a fully wired application over an in-memory
// database for handler tests.
package testutils

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintrack/fintrack/infra"
	accountrepo "github.com/fintrack/fintrack/infra/repository/account"
	currencyrepo "github.com/fintrack/fintrack/infra/repository/currency"
	userrepo "github.com/fintrack/fintrack/infra/repository/user"
	"github.com/fintrack/fintrack/pkg/config"
	"github.com/fintrack/fintrack/pkg/password"
	accountsvc "github.com/fintrack/fintrack/pkg/service/account"
	authsvc "github.com/fintrack/fintrack/pkg/service/auth"
	currencysvc "github.com/fintrack/fintrack/pkg/service/currency"
	"github.com/fintrack/fintrack/pkg/token"
	"github.com/fintrack/fintrack/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestConfig is the fixed configuration handler tests run under.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{},
		Auth: &config.Auth{
			Jwt:        &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
			BcryptCost: bcrypt.MinCost,
		},
	}
}

// NewTestApp wires the full application over a fresh in-memory sqlite
// database, with the default currency seed applied.
func NewTestApp(t *testing.T) (*fiber.App, *token.Service) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infra.Migrate(db))

	cfg := TestConfig()
	users := userrepo.New(db)
	accounts := accountrepo.New(db)
	currencies := currencyrepo.New(db)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	tokens := token.New(cfg.Auth.Jwt)
	log := slog.Default()

	app := webapi.New(webapi.Deps{
		Cfg:         cfg,
		AuthSvc:     authsvc.New(users, hasher, tokens, log),
		AccountSvc:  accountsvc.New(accounts, currencies, log),
		CurrencySvc: currencysvc.New(currencies, log),
		Logger:      log,
	})
	return app, tokens
}

// MakeRequest performs one request against the app, with an optional
// bearer token.
func MakeRequest(t *testing.T, app *fiber.App, method, path, body, bearer string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeJSON decodes a response body into v.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// RegisterUser registers a user through the API and returns its access
// token.
func RegisterUser(t *testing.T, app *fiber.App, username, email string) string {
	t.Helper()
	body := `{"username":"` + username + `","email":"` + email + `","password":"password123"}`
	resp := MakeRequest(t, app, fiber.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	DecodeJSON(t, resp, &envelope)
	require.NotEmpty(t, envelope.Data.AccessToken)
	return envelope.Data.AccessToken
}
