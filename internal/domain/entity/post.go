package entity

import "time"

// DefaultPostType is assigned when a caller does not classify the post.
const DefaultPostType = "article"

// Post is a piece of blog content. Tags, CoverURL and ImageURLs are optional
// and nil when absent; ImageURLs holds a serialized list (JSON or
// comma-separated) exactly as the client supplied it.
type Post struct {
	ID        uint
	Type      string
	Title     string
	Content   string
	Excerpt   string
	Author    string
	Tags      *string
	CoverURL  *string
	ImageURLs *string
	CreatedAt time.Time // Server-assigned at insert time, UTC.
	OwnerID   uint
}
