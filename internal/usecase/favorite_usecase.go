package usecase

import "context"

// AddFavoriteOutput reports the favorite's ID. Already is true when the pair
// was favorited before this call, in which case the existing favorite is
// returned instead of a duplicate.
type AddFavoriteOutput struct {
	FavoriteID uint `json:"favorite_id"`
	Already    bool `json:"-"`
}

// FavoriteUsecase defines the interface for favorite business operations.
type FavoriteUsecase interface {
	// Add favorites a post for a user. The post must exist; repeating the
	// call is idempotent.
	Add(ctx context.Context, userID, postID uint) (*AddFavoriteOutput, error)

	// Remove deletes the favorite, failing when none exists.
	Remove(ctx context.Context, userID, postID uint) error

	// ListForUser returns the user's favorited posts ordered by favorite
	// creation time descending. Posts deleted since favoriting are
	// silently dropped.
	ListForUser(ctx context.Context, userID uint) ([]*PostOutput, error)

	// Check reports whether the pair is favorited. It never fails on
	// unknown users or posts.
	Check(ctx context.Context, userID, postID uint) (bool, error)
}
