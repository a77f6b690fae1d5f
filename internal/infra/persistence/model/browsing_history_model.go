package model

import "time"

// BrowsingHistoryModel mirrors the 'browsing_history' table. There is no
// application-level cascade from posts to history; the post FK carries the
// declared ON DELETE action and engines that enforce it cascade at the
// storage layer.
type BrowsingHistoryModel struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"not null;index:ix_history_user_viewed,priority:1;index:ix_history_user_post,priority:1"`
	PostID   uint      `gorm:"not null;index:ix_history_user_post,priority:2"`
	ViewedAt time.Time `gorm:"not null;autoCreateTime;index:ix_history_user_viewed,priority:2"`

	Post PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BrowsingHistoryModel) TableName() string {
	return "browsing_history"
}
