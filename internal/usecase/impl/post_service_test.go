package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreateDefaultsAndTrim(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	ownerID := registerUser(t, txManager, "writer")

	out, err := postSvc.Create(ctx, &usecase.CreatePostInput{
		Title:   "  Spaced Title  ",
		Content: "\tbody\n",
		Excerpt: " excerpt ",
		Author:  " someone ",
	}, &ownerID)
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "article", out.Type)
	assert.Equal(t, "Spaced Title", out.Title)
	assert.Equal(t, "body", out.Content)
	assert.Equal(t, "excerpt", out.Excerpt)
	assert.Equal(t, "someone", out.Author)
	assert.Equal(t, ownerID, out.OwnerID)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestPostService_CreateExplicitOwnerWins(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	bodyOwner := registerUser(t, txManager, "body-owner")
	queryOwner := registerUser(t, txManager, "query-owner")

	out, err := postSvc.Create(ctx, &usecase.CreatePostInput{
		Title:   "ownership",
		Content: "c",
		Excerpt: "e",
		Author:  "a",
		OwnerID: &bodyOwner,
	}, &queryOwner)
	require.NoError(t, err)
	assert.Equal(t, queryOwner, out.OwnerID)
}

func TestPostService_ListNewestFirst(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	ownerID := registerUser(t, txManager, "lister")

	first := createPost(t, postSvc, ownerID, "first")
	time.Sleep(5 * time.Millisecond)
	second := createPost(t, postSvc, ownerID, "second")
	time.Sleep(5 * time.Millisecond)
	third := createPost(t, postSvc, ownerID, "third")

	listed, err := postSvc.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, third.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
	assert.Equal(t, first.ID, listed[2].ID)

	// Pagination walks the same ordering.
	page, err := postSvc.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)
}

func TestPostService_GetNotFound(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())

	_, err := postSvc.Get(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_ListByOwner(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	firstOwner := registerUser(t, txManager, "owner-a")
	secondOwner := registerUser(t, txManager, "owner-b")
	createPost(t, postSvc, firstOwner, "mine")
	createPost(t, postSvc, secondOwner, "theirs")

	mine, err := postSvc.ListByOwner(ctx, firstOwner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)

	// An unknown owner yields an empty list, not an error.
	none, err := postSvc.ListByOwner(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostService_PartialUpdate(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	ownerID := registerUser(t, txManager, "editor")
	post := createPost(t, postSvc, ownerID, "original title")

	updated, err := postSvc.Update(ctx, post.ID, &usecase.UpdatePostInput{
		Title: ptr("new title"),
		Tags:  ptr("go,web"),
	}, &ownerID)
	require.NoError(t, err)

	assert.Equal(t, "new title", updated.Title)
	require.NotNil(t, updated.Tags)
	assert.Equal(t, "go,web", *updated.Tags)

	// Untouched fields keep their values.
	assert.Equal(t, post.Content, updated.Content)
	assert.Equal(t, post.Excerpt, updated.Excerpt)
	assert.Equal(t, post.Author, updated.Author)
	assert.Equal(t, post.OwnerID, updated.OwnerID)
}

func TestPostService_UpdateEmptyInputIsNoop(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	ownerID := registerUser(t, txManager, "noop-editor")
	post := createPost(t, postSvc, ownerID, "untouched")

	updated, err := postSvc.Update(ctx, post.ID, &usecase.UpdatePostInput{}, &ownerID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, updated.Title)
}

func TestPostService_UpdateForbiddenForOtherUser(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	ownerID := registerUser(t, txManager, "rightful-owner")
	strangerID := registerUser(t, txManager, "stranger")
	post := createPost(t, postSvc, ownerID, "protected")

	_, err := postSvc.Update(ctx, post.ID, &usecase.UpdatePostInput{
		Title: ptr("hijacked"),
	}, &strangerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostForbidden)

	// Without a requester the ownership check is skipped.
	updated, err := postSvc.Update(ctx, post.ID, &usecase.UpdatePostInput{
		Title: ptr("renamed"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
}

func TestPostService_DeleteRemovesFavorites(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	favoriteSvc := NewFavoriteService(txManager, testLogger())
	ctx := context.Background()

	ownerID := registerUser(t, txManager, "deleter")
	readerID := registerUser(t, txManager, "reader")
	post := createPost(t, postSvc, ownerID, "doomed")

	_, err := favoriteSvc.Add(ctx, readerID, post.ID)
	require.NoError(t, err)

	require.NoError(t, postSvc.Delete(ctx, post.ID, &ownerID))

	_, err = postSvc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)

	favorited, err := favoriteSvc.Check(ctx, readerID, post.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestPostService_DeleteChecks(t *testing.T) {
	t.Parallel()

	txManager := newTestTxManager(t)
	postSvc := NewPostService(txManager, testLogger())
	ctx := context.Background()

	ownerID := registerUser(t, txManager, "guarded")
	strangerID := registerUser(t, txManager, "intruder")
	post := createPost(t, postSvc, ownerID, "kept")

	err := postSvc.Delete(ctx, post.ID, &strangerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostForbidden)

	err = postSvc.Delete(ctx, 9999, &ownerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
