package model

import "time"

// PostModel mirrors the 'posts' table. Tags, CoverURL and ImageURLs are
// nullable; ImageURLs stores a serialized list (JSON or comma-separated).
type PostModel struct {
	ID        uint      `gorm:"primaryKey"`
	Type      string    `gorm:"type:varchar(20);not null;default:article"`
	Title     string    `gorm:"type:varchar(200);index;not null"`
	Content   string    `gorm:"type:text;not null"`
	Excerpt   string    `gorm:"type:varchar(500);not null"`
	Author    string    `gorm:"type:varchar(100);not null"`
	Tags      *string   `gorm:"type:varchar(200)"`
	CoverURL  *string   `gorm:"type:varchar(500)"`
	ImageURLs *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index:ix_posts_owner_created,priority:2"`
	OwnerID   uint      `gorm:"not null;index:ix_posts_owner_created,priority:1"`

	Favorites []FavoriteModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
