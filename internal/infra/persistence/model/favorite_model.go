package model

import "time"

// FavoriteModel mirrors the 'favorites' table. The unique index on
// (user_id, post_id) enforces at most one favorite per pair.
type FavoriteModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:ix_favorites_user_post,priority:1;index:ix_favorites_user_created,priority:1"`
	PostID    uint      `gorm:"not null;uniqueIndex:ix_favorites_user_post,priority:2"`
	CreatedAt time.Time `gorm:"not null;index:ix_favorites_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
