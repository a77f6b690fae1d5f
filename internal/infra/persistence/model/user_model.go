// Package model contains the GORM table definitions for the blog schema.
package model

// UserModel mirrors the 'users' table. Deleting a user cascades to their
// posts, favorites and browsing history.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	Posts           []PostModel            `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Favorites       []FavoriteModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BrowsingHistory []BrowsingHistoryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
