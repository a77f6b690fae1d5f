package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrFavoriteNotFound is a domain-specific error returned when a favorite is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the standard operations for favorite persistence.
type FavoriteRepository interface {
	// Create persists a new favorite entity to the storage.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByUserAndPost retrieves the favorite for a (user, post) pair.
	FindByUserAndPost(ctx context.Context, userID, postID uint) (*entity.Favorite, error)

	// FindByUser retrieves a user's favorites ordered by creation time
	// descending.
	FindByUser(ctx context.Context, userID uint) ([]*entity.Favorite, error)

	// DeleteByUserAndPost removes the favorite for a (user, post) pair.
	DeleteByUserAndPost(ctx context.Context, userID, postID uint) error

	// CountByUserAndPost reports how many favorite rows exist for the pair.
	// The unique index keeps this at zero or one.
	CountByUserAndPost(ctx context.Context, userID, postID uint) (int64, error)
}
