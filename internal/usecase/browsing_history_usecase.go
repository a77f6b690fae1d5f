package usecase

import "context"

// RecordHistoryOutput reports the ID of the freshly written history row.
type RecordHistoryOutput struct {
	HistoryID uint `json:"history_id"`
}

// ClearHistoryOutput reports how many history rows were removed.
type ClearHistoryOutput struct {
	Deleted int64 `json:"deleted"`
}

// BrowsingHistoryUsecase defines the interface for browsing history business operations.
type BrowsingHistoryUsecase interface {
	// Record stores that the user viewed the post. A repeat view replaces
	// the existing row so the timestamp reflects the most recent view.
	// Both the user and the post must exist.
	Record(ctx context.Context, userID, postID uint) (*RecordHistoryOutput, error)

	// ListForUser returns the user's viewed posts, most recent first. The
	// user must exist; posts deleted since viewing are silently dropped.
	ListForUser(ctx context.Context, userID uint) ([]*PostOutput, error)

	// Clear removes all history for the user and returns the count. The
	// user must exist.
	Clear(ctx context.Context, userID uint) (*ClearHistoryOutput, error)
}
