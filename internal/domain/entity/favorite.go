package entity

import "time"

// Favorite joins a user to a post they bookmarked. At most one favorite
// exists per (UserID, PostID) pair; the storage layer enforces this with a
// unique index.
type Favorite struct {
	ID        uint
	UserID    uint
	PostID    uint
	CreatedAt time.Time
}
