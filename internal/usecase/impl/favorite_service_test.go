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

func TestFavoriteService_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	txManager := postgres.NewTransactionManager(db)
	postSvc := NewPostService(txManager, testLogger())
	favoriteSvc := NewFavoriteService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "collector")
	post := createPost(t, postSvc, userID, "collectible")

	first, err := favoriteSvc.Add(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.False(t, first.Already)

	second, err := favoriteSvc.Add(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.True(t, second.Already)
	assert.Equal(t, first.FavoriteID, second.FavoriteID)

	var count int64
	require.NoError(t, db.Model(&model.FavoriteModel{}).
		Where("user_id = ? AND post_id = ?", userID, post.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavoriteService_AddUnknownPost(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	favoriteSvc := NewFavoriteService(txManager, testLogger())

	userID := registerUser(t, txManager, "eager")

	_, err := favoriteSvc.Add(context.Background(), userID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestFavoriteService_RemoveAndCheck(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	favoriteSvc := NewFavoriteService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "fickle")
	post := createPost(t, postSvc, userID, "liked then not")

	_, err := favoriteSvc.Add(ctx, userID, post.ID)
	require.NoError(t, err)

	favorited, err := favoriteSvc.Check(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	require.NoError(t, favoriteSvc.Remove(ctx, userID, post.ID))

	favorited, err = favoriteSvc.Check(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	err = favoriteSvc.Remove(ctx, userID, post.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_CheckUnknownPairIsFalse(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	favoriteSvc := NewFavoriteService(txManager, testLogger())

	favorited, err := favoriteSvc.Check(context.Background(), 9999, 9999)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_ListMostRecentFirst(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	favoriteSvc := NewFavoriteService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "orderly")
	first := createPost(t, postSvc, userID, "favorited first")
	second := createPost(t, postSvc, userID, "favorited second")

	_, err := favoriteSvc.Add(ctx, userID, first.ID)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = favoriteSvc.Add(ctx, userID, second.ID)
	require.NoError(t, err)

	listed, err := favoriteSvc.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestFavoriteService_ListDropsVanishedPosts(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	txManager := postgres.NewTransactionManager(db)
	postSvc := NewPostService(txManager, testLogger())
	favoriteSvc := NewFavoriteService(txManager, testLogger())
	ctx := context.Background()

	userID := registerUser(t, txManager, "survivor")
	kept := createPost(t, postSvc, userID, "kept")
	vanished := createPost(t, postSvc, userID, "vanished")

	_, err := favoriteSvc.Add(ctx, userID, kept.ID)
	require.NoError(t, err)
	_, err = favoriteSvc.Add(ctx, userID, vanished.ID)
	require.NoError(t, err)

	// Remove the post row directly so the favorite is left dangling.
	require.NoError(t, db.Delete(&model.PostModel{}, vanished.ID).Error)

	listed, err := favoriteSvc.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)
}
