package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blog/internal/domain/repository"
	"blog/internal/infra/auth"
	"blog/internal/infra/persistence/model"
	"blog/internal/infra/persistence/postgres"
	"blog/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps the whole test on a single in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.FavoriteModel{},
		&model.BrowsingHistoryModel{},
	))

	return db
}

func newTestTxManager(t *testing.T) repository.TransactionManager {
	t.Helper()

	return postgres.NewTransactionManager(newTestDB(t))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestAuthService uses the cheapest bcrypt cost to keep tests fast.
func newTestAuthService(txManager repository.TransactionManager) usecase.AuthUsecase {
	return NewAuthService(txManager, auth.NewBcryptHasherWithCost(bcrypt.MinCost), testLogger())
}

// registerUser creates a user through the registration flow and returns its ID.
func registerUser(t *testing.T, txManager repository.TransactionManager, username string) uint {
	t.Helper()

	out, err := newTestAuthService(txManager).Register(context.Background(), &usecase.CredentialsInput{
		Username: username,
		Password: "secret123",
	})
	require.NoError(t, err)

	return out.UserID
}

// createPost persists a minimal post owned by ownerID and returns it.
func createPost(t *testing.T, postSvc usecase.PostUsecase, ownerID uint, title string) *usecase.PostOutput {
	t.Helper()

	out, err := postSvc.Create(context.Background(), &usecase.CreatePostInput{
		Title:   title,
		Content: "content of " + title,
		Excerpt: "excerpt of " + title,
		Author:  "tester",
	}, &ownerID)
	require.NoError(t, err)

	return out
}

func ptr[T any](v T) *T {
	return &v
}
