package account_test

import (
	"context"
	"testing"
	"time"

	accountrepo "github.com/fintrack/fintrack/infra/repository/account"
	"github.com/fintrack/fintrack/pkg/dto"
	"github.com/fintrack/fintrack/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSqliteRepo(t *testing.T) repository.AccountRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&accountrepo.Account{}))
	return accountrepo.New(db)
}

func create(t *testing.T, repo repository.AccountRepository, userID uuid.UUID, name string, balance float64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := repo.Create(context.Background(), dto.AccountCreate{
		ID:             id,
		UserID:         userID,
		AccountName:    name,
		CurrencyCode:   "USD",
		InitialBalance: balance,
	})
	require.NoError(t, err)
	return id
}

func TestCreate_SeedsCurrentBalance(t *testing.T) {
	t.Parallel()
	repo := newSqliteRepo(t)
	id := create(t, repo, uuid.New(), "Savings", 150)

	a, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, float64(150), a.InitialBalance)
	assert.Equal(t, float64(150), a.CurrentBalance)
}

func TestListByUserPaginated_NewestFirst(t *testing.T) {
	t.Parallel()
	repo := newSqliteRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	create(t, repo, userID, "first", 1)
	time.Sleep(5 * time.Millisecond)
	create(t, repo, userID, "second", 2)
	time.Sleep(5 * time.Millisecond)
	newest := create(t, repo, userID, "third", 3)

	items, total, err := repo.ListByUserPaginated(ctx, userID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, newest, items[0].ID)

	// Total ignores the window; the second page holds the remainder.
	items, total, err = repo.ListByUserPaginated(ctx, userID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 1)
}

func TestListByUserPaginated_ScopedToUser(t *testing.T) {
	t.Parallel()
	repo := newSqliteRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	create(t, repo, userID, "mine", 1)
	create(t, repo, uuid.New(), "theirs", 1)

	items, total, err := repo.ListByUserPaginated(ctx, userID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
}

func TestUpdateBalance_OnlyCurrentBalance(t *testing.T) {
	t.Parallel()
	repo := newSqliteRepo(t)
	ctx := context.Background()
	id := create(t, repo, uuid.New(), "Savings", 100)

	before, err := repo.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateBalance(ctx, id, 25))

	after, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(25), after.CurrentBalance)
	assert.Equal(t, float64(100), after.InitialBalance)
	assert.Equal(t, before.AccountName, after.AccountName)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}
