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

// browsingHistoryService implements the BrowsingHistoryUsecase interface.
type browsingHistoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewBrowsingHistoryService is the constructor for browsingHistoryService.
func NewBrowsingHistoryService(txManager repository.TransactionManager, logger *slog.Logger) usecase.BrowsingHistoryUsecase {
	return &browsingHistoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// Record stores a view of the post by the user. A repeat view replaces the
// earlier record so the entry moves to the top of the history with a fresh
// timestamp.
func (srv *browsingHistoryService) Record(ctx context.Context, userID, postID uint) (*usecase.RecordHistoryOutput, error) {
	var output *usecase.RecordHistoryOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}

		if _, err := repoFactory.NewPostRepository().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to load post")
		}

		historyRepo := repoFactory.NewBrowsingHistoryRepository()

		existing, err := historyRepo.FindByUserAndPost(ctx, userID, postID)
		switch {
		case err == nil:
			if err := historyRepo.DeleteByID(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to replace history record")
			}
		case !errors.Is(err, repository.ErrHistoryNotFound):
			return errors.Wrap(err, "failed to look up history record")
		}

		record := &entity.BrowsingHistory{UserID: userID, PostID: postID}
		if err := historyRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create history record")
		}

		output = &usecase.RecordHistoryOutput{HistoryID: record.ID}

		return nil
	})
	if err != nil {
		srv.logger.Warn("History record failed",
			slog.Uint64("userID", uint64(userID)),
			slog.Uint64("postID", uint64(postID)),
			slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// ListForUser returns the posts the user viewed, most recent first. Records
// whose post has been removed are dropped from the result.
func (srv *browsingHistoryService) ListForUser(ctx context.Context, userID uint) ([]*usecase.PostOutput, error) {
	var posts []*entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}

		records, err := repoFactory.NewBrowsingHistoryRepository().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list history")
		}

		orderedIDs := make([]uint, 0, len(records))
		for _, record := range records {
			orderedIDs = append(orderedIDs, record.PostID)
		}

		posts, err = projectPostsInOrder(ctx, repoFactory.NewPostRepository(), orderedIDs)

		return err
	})
	if err != nil {
		return nil, err
	}

	return toPostOutputs(posts), nil
}

// Clear removes all of the user's history records and reports how many were
// deleted.
func (srv *browsingHistoryService) Clear(ctx context.Context, userID uint) (*usecase.ClearHistoryOutput, error) {
	var output *usecase.ClearHistoryOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}

		deleted, err := repoFactory.NewBrowsingHistoryRepository().DeleteAllForUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to clear history")
		}

		output = &usecase.ClearHistoryOutput{Deleted: deleted}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("History cleared",
		slog.Uint64("userID", uint64(userID)),
		slog.Int64("deleted", output.Deleted))

	return output, nil
}
