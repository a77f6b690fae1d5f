package impl

import (
	"context"
	"log/slog"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(txManager repository.TransactionManager, logger *slog.Logger) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager: txManager,
		logger:    logger,
	}
}

// Add marks a post as favorited by the user. Adding an already-favorited
// post is not an error: the existing record is returned with Already set.
func (srv *favoriteService) Add(ctx context.Context, userID, postID uint) (*usecase.AddFavoriteOutput, error) {
	var output *usecase.AddFavoriteOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewPostRepository().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to load post")
		}

		favoriteRepo := repoFactory.NewFavoriteRepository()

		existing, err := favoriteRepo.FindByUserAndPost(ctx, userID, postID)
		if err == nil {
			output = &usecase.AddFavoriteOutput{FavoriteID: existing.ID, Already: true}

			return nil
		}
		if !errors.Is(err, repository.ErrFavoriteNotFound) {
			return errors.Wrap(err, "failed to look up favorite")
		}

		favorite := &entity.Favorite{UserID: userID, PostID: postID}
		if err := favoriteRepo.Create(ctx, favorite); err != nil {
			return errors.Wrap(err, "failed to create favorite")
		}

		output = &usecase.AddFavoriteOutput{FavoriteID: favorite.ID}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Favorite add failed",
			slog.Uint64("userID", uint64(userID)),
			slog.Uint64("postID", uint64(postID)),
			slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Remove deletes the user's favorite of the post.
func (srv *favoriteService) Remove(ctx context.Context, userID, postID uint) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.NewFavoriteRepository().DeleteByUserAndPost(ctx, userID, postID)
		if err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return errors.Wrap(domainerrors.ErrFavoriteNotFound, "favorite not found")
			}

			return errors.Wrap(err, "failed to delete favorite")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Favorite removed",
		slog.Uint64("userID", uint64(userID)),
		slog.Uint64("postID", uint64(postID)))

	return nil
}

// ListForUser returns the user's favorited posts, most recently favorited
// first. Favorites whose post has been removed are dropped from the result.
func (srv *favoriteService) ListForUser(ctx context.Context, userID uint) ([]*usecase.PostOutput, error) {
	var posts []*entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favorites, err := repoFactory.NewFavoriteRepository().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list favorites")
		}

		orderedIDs := make([]uint, 0, len(favorites))
		for _, favorite := range favorites {
			orderedIDs = append(orderedIDs, favorite.PostID)
		}

		posts, err = projectPostsInOrder(ctx, repoFactory.NewPostRepository(), orderedIDs)

		return err
	})
	if err != nil {
		return nil, err
	}

	return toPostOutputs(posts), nil
}

// Check reports whether the user has favorited the post.
func (srv *favoriteService) Check(ctx context.Context, userID, postID uint) (bool, error) {
	var favorited bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.NewFavoriteRepository().CountByUserAndPost(ctx, userID, postID)
		if err != nil {
			return errors.Wrap(err, "failed to count favorites")
		}

		favorited = count > 0

		return nil
	})
	if err != nil {
		return false, err
	}

	return favorited, nil
}
