package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fintrack/fintrack/pkg/domain"
	"github.com/fintrack/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, common.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return common.RespondError(c, err)
	})
	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close() //nolint:errcheck

	var body common.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondError_Taxonomy(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrUsernameTaken, fiber.StatusConflict, common.CodeUsernameTaken},
		{domain.ErrEmailRegistered, fiber.StatusConflict, common.CodeEmailRegistered},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, common.CodeInvalidCredentials},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized, common.CodeTokenExpired},
		{domain.ErrInvalidBalance, fiber.StatusBadRequest, common.CodeInvalidBalance},
		{domain.ErrAccountNotFound, fiber.StatusNotFound, common.CodeAccountNotFound},
		{domain.ErrInvalidPagination, fiber.StatusBadRequest, common.CodeInvalidPagination},
	}
	for _, tc := range cases {
		status, body := respond(t, tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.code, body.Code)
		assert.Equal(t, tc.status, body.Status)
	}
}

func TestRespondError_WrappedError(t *testing.T) {
	t.Parallel()
	status, body := respond(t, fmt.Errorf("listing accounts: %w", domain.ErrInvalidPagination))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, common.CodeInvalidPagination, body.Code)
}

func TestRespondError_UnknownErrorIsOpaque(t *testing.T) {
	t.Parallel()
	status, body := respond(t, errors.New("pq: connection refused"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, common.CodeInternalError, body.Code)
	assert.NotContains(t, body.Message, "pq:")
}
