package entity

import "time"

// BrowsingHistory records that a user viewed a post. Repeat views replace the
// row (delete then insert), so ViewedAt always reflects the most recent view.
type BrowsingHistory struct {
	ID       uint
	UserID   uint
	PostID   uint
	ViewedAt time.Time
}
