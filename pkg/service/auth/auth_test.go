package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fintrack/fintrack/infra"
	userrepo "github.com/fintrack/fintrack/infra/repository/user"
	"github.com/fintrack/fintrack/pkg/config"
	"github.com/fintrack/fintrack/pkg/domain"
	"github.com/fintrack/fintrack/pkg/password"
	"github.com/fintrack/fintrack/pkg/repository"
	authsvc "github.com/fintrack/fintrack/pkg/service/auth"
	"github.com/fintrack/fintrack/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*authsvc.Service, *token.Service, repository.UserRepository) {
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

	users := userrepo.New(db)
	tokens := token.New(&config.Jwt{Secret: "test-secret", Expiry: time.Hour})
	hasher := password.NewHasher(bcrypt.MinCost)
	svc := authsvc.New(users, hasher, tokens, slog.Default())
	return svc, tokens, users
}

func TestRegister_TokenRoundTrip(t *testing.T) {
	t.Parallel()
	svc, tokens, _ := newTestService(t)

	result, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)

	payload, err := tokens.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.ID, payload.ID)
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, "alice@example.com", payload.Email)
}

func TestRegister_UsernameTaken(t *testing.T) {
	t.Parallel()
	svc, _, users := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// The conflicting registration must not have left a second row behind.
	_, err = users.GetByEmail(ctx, "other@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EmailRegistered(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob", "alice@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrEmailRegistered)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, tokens, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, result.ID)
	assert.Equal(t, "alice", result.Username)

	payload, err := tokens.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, payload.ID)
}

func TestLogin_NoUsernameOracle(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	// Wrong password for an existing user and a nonexistent user must
	// produce the exact same error.
	_, wrongPassErr := svc.Login(ctx, "alice", "wrongpassword")
	_, unknownUserErr := svc.Login(ctx, "nobody", "password123")

	assert.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()
	svc, tokens, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	payload, err := tokens.Verify(registered.AccessToken)
	require.NoError(t, err)

	u, err := svc.CurrentUser(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	// Claims for a deleted or never-existing user resolve to an auth error.
	missing := *payload
	missing.ID = registered.ID
	missing.ID[0] ^= 0xff
	_, err = svc.CurrentUser(ctx, &missing)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
