package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// FindByIDs retrieves the posts matching the given IDs, in no
	// particular order. IDs with no matching row are simply absent from
	// the result.
	FindByIDs(ctx context.Context, ids []uint) ([]*entity.Post, error)

	// List retrieves posts ordered by creation time descending, paginated
	// by offset and limit.
	List(ctx context.Context, offset, limit int) ([]*entity.Post, error)

	// FindByOwner retrieves all posts owned by the given user, newest
	// first. An unknown owner yields an empty slice, not an error.
	FindByOwner(ctx context.Context, ownerID uint) ([]*entity.Post, error)

	// UpdateFields applies a partial update to the post with the given ID.
	// Only the columns present in fields are touched.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error

	// Delete removes a post and its favorites. Browsing history rows
	// referencing the post are left to the storage layer's FK action.
	Delete(ctx context.Context, id uint) error
}
