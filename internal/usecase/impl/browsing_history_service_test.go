package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/infra/persistence/model"
	"blog/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowsingHistoryService_RecordRequiresUserAndPost(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	historySvc := NewBrowsingHistoryService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "viewer")
	post := createPost(t, postSvc, userID, "viewed")

	_, err := historySvc.Record(ctx, 9999, post.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = historySvc.Record(ctx, userID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)

	out, err := historySvc.Record(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.NotZero(t, out.HistoryID)
}

func TestBrowsingHistoryService_RepeatViewReplacesRecord(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	txManager := postgres.NewTransactionManager(db)
	postSvc := NewPostService(txManager, testLogger())
	historySvc := NewBrowsingHistoryService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "rereader")
	post := createPost(t, postSvc, userID, "reread")

	first, err := historySvc.Record(ctx, userID, post.ID)
	require.NoError(t, err)

	var firstRow model.BrowsingHistoryModel
	require.NoError(t, db.First(&firstRow, first.HistoryID).Error)

	time.Sleep(5 * time.Millisecond)

	second, err := historySvc.Record(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.HistoryID, second.HistoryID)

	// Only the fresh row remains and it carries a newer timestamp.
	var rows []model.BrowsingHistoryModel
	require.NoError(t, db.Where("user_id = ? AND post_id = ?", userID, post.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, second.HistoryID, rows[0].ID)
	assert.True(t, rows[0].ViewedAt.After(firstRow.ViewedAt))
}

func TestBrowsingHistoryService_ListMostRecentFirst(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	historySvc := NewBrowsingHistoryService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "wanderer")
	first := createPost(t, postSvc, userID, "seen first")
	second := createPost(t, postSvc, userID, "seen second")

	_, err := historySvc.Record(ctx, userID, first.ID)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = historySvc.Record(ctx, userID, second.ID)
	require.NoError(t, err)

	listed, err := historySvc.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)

	// Viewing the older post again moves it to the front.
	time.Sleep(5 * time.Millisecond)
	_, err = historySvc.Record(ctx, userID, first.ID)
	require.NoError(t, err)

	listed, err = historySvc.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
}

func TestBrowsingHistoryService_ListUnknownUser(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	historySvc := NewBrowsingHistoryService(txManager, testLogger())

	_, err := historySvc.ListForUser(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestBrowsingHistoryService_Clear(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	historySvc := NewBrowsingHistoryService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "amnesiac")
	first := createPost(t, postSvc, userID, "forgotten one")
	second := createPost(t, postSvc, userID, "forgotten two")

	_, err := historySvc.Record(ctx, userID, first.ID)
	require.NoError(t, err)
	_, err = historySvc.Record(ctx, userID, second.ID)
	require.NoError(t, err)

	cleared, err := historySvc.Clear(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cleared.Deleted)

	listed, err := historySvc.ListForUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Clearing again is a no-op reporting zero deletions.
	cleared, err = historySvc.Clear(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, cleared.Deleted)
}
