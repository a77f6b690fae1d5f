package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrHistoryNotFound is a domain-specific error returned when a browsing history row is not found.
var ErrHistoryNotFound = errors.New("browsing history not found")

// BrowsingHistoryRepository defines the standard operations for browsing history persistence.
type BrowsingHistoryRepository interface {
	// Create persists a new browsing history entity to the storage.
	Create(ctx context.Context, history *entity.BrowsingHistory) error

	// FindByUserAndPost retrieves the history row for a (user, post) pair.
	FindByUserAndPost(ctx context.Context, userID, postID uint) (*entity.BrowsingHistory, error)

	// FindByUser retrieves a user's history ordered by view time descending.
	FindByUser(ctx context.Context, userID uint) ([]*entity.BrowsingHistory, error)

	// DeleteByID removes a single history row.
	DeleteByID(ctx context.Context, id uint) error

	// DeleteAllForUser removes every history row for the user and returns
	// the number of rows deleted.
	DeleteAllForUser(ctx context.Context, userID uint) (int64, error)
}
