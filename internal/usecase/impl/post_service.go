package impl

import (
	"context"
	"log/slog"
	"strings"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(txManager repository.TransactionManager, logger *slog.Logger) usecase.PostUsecase {
	return &postService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create persists a new post. An explicit owner parameter wins over the
// payload's owner_id. The owner is not checked for existence: an invalid
// reference fails at the storage layer's foreign-key constraint.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput, ownerID *uint) (*usecase.PostOutput, error) {
	post := &entity.Post{
		Type:      strings.TrimSpace(input.Type),
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		Excerpt:   strings.TrimSpace(input.Excerpt),
		Author:    strings.TrimSpace(input.Author),
		Tags:      input.Tags,
		CoverURL:  input.CoverURL,
		ImageURLs: input.ImageURLs,
	}
	if post.Type == "" {
		post.Type = entity.DefaultPostType
	}

	switch {
	case ownerID != nil:
		post.OwnerID = *ownerID
	case input.OwnerID != nil:
		post.OwnerID = *input.OwnerID
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewPostRepository().Create(ctx, post)
	})
	if err != nil {
		srv.logger.Warn("Post creation failed", slog.Uint64("ownerID", uint64(post.OwnerID)), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Post created", slog.Uint64("postID", uint64(post.ID)))

	return toPostOutput(post), nil
}

// List returns posts newest first, paginated by offset and limit.
func (srv *postService) List(ctx context.Context, skip, limit int) ([]*usecase.PostOutput, error) {
	if limit <= 0 {
		limit = usecase.DefaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	var posts []*entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPostRepository().List(ctx, skip, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list posts")
		}

		posts = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPostOutputs(posts), nil
}

// Get returns a single post or a not-found error.
func (srv *postService) Get(ctx context.Context, postID uint) (*usecase.PostOutput, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPostRepository().FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to load post")
		}

		post = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPostOutput(post), nil
}

// ListByOwner returns all posts for the owner, newest first.
func (srv *postService) ListByOwner(ctx context.Context, ownerID uint) ([]*usecase.PostOutput, error) {
	var posts []*entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPostRepository().FindByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to list posts by owner")
		}

		posts = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPostOutputs(posts), nil
}

// Update applies the non-nil fields of input after the not-found and
// ownership checks.
func (srv *postService) Update(ctx context.Context, postID uint, input *usecase.UpdatePostInput, requesterID *uint) (*usecase.PostOutput, error) {
	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to load post for update")
		}

		if requesterID != nil && post.OwnerID != *requesterID {
			return errors.Wrap(domainerrors.ErrPostForbidden, "requester does not own the post")
		}

		fields := buildUpdateFields(input)
		if len(fields) > 0 {
			if err := postRepo.UpdateFields(ctx, postID, fields); err != nil {
				return errors.Wrap(err, "failed to update post")
			}
		}

		updated, err = postRepo.FindByID(ctx, postID)
		if err != nil {
			return errors.Wrap(err, "failed to reload post after update")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Post update failed", slog.Uint64("postID", uint64(postID)), slog.Any("error", err))

		return nil, err
	}

	return toPostOutput(updated), nil
}

// Delete removes a post and its favorites after the same checks as Update.
func (srv *postService) Delete(ctx context.Context, postID uint, requesterID *uint) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to load post for delete")
		}

		if requesterID != nil && post.OwnerID != *requesterID {
			return errors.Wrap(domainerrors.ErrPostForbidden, "requester does not own the post")
		}

		return postRepo.Delete(ctx, postID)
	})
	if err != nil {
		srv.logger.Warn("Post delete failed", slog.Uint64("postID", uint64(postID)), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Post deleted", slog.Uint64("postID", uint64(postID)))

	return nil
}

// buildUpdateFields collects only the columns the caller actually set.
func buildUpdateFields(input *usecase.UpdatePostInput) map[string]any {
	fields := make(map[string]any)

	if input.Type != nil {
		fields["type"] = *input.Type
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.Excerpt != nil {
		fields["excerpt"] = *input.Excerpt
	}
	if input.Tags != nil {
		fields["tags"] = *input.Tags
	}
	if input.CoverURL != nil {
		fields["cover_url"] = *input.CoverURL
	}
	if input.ImageURLs != nil {
		fields["image_urls"] = *input.ImageURLs
	}

	return fields
}

// --- Output mapping shared by the post, favorite and history services ---

func toPostOutput(post *entity.Post) *usecase.PostOutput {
	if post == nil {
		return nil
	}

	return &usecase.PostOutput{
		ID:        post.ID,
		Type:      post.Type,
		Title:     post.Title,
		Content:   post.Content,
		Excerpt:   post.Excerpt,
		Author:    post.Author,
		Tags:      post.Tags,
		CoverURL:  post.CoverURL,
		ImageURLs: post.ImageURLs,
		CreatedAt: post.CreatedAt,
		OwnerID:   post.OwnerID,
	}
}

func toPostOutputs(posts []*entity.Post) []*usecase.PostOutput {
	outputs := make([]*usecase.PostOutput, 0, len(posts))
	for _, post := range posts {
		outputs = append(outputs, toPostOutput(post))
	}

	return outputs
}

// projectPostsInOrder batch-fetches the posts for orderedIDs and restores the
// key order. IDs whose post no longer exists are silently dropped rather than
// causing an error.
func projectPostsInOrder(ctx context.Context, postRepo repository.PostRepository, orderedIDs []uint) ([]*entity.Post, error) {
	if len(orderedIDs) == 0 {
		return []*entity.Post{}, nil
	}

	fetched, err := postRepo.FindByIDs(ctx, orderedIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to batch-fetch posts")
	}

	byID := make(map[uint]*entity.Post, len(fetched))
	for _, post := range fetched {
		byID[post.ID] = post
	}

	ordered := make([]*entity.Post, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}

	return ordered, nil
}
