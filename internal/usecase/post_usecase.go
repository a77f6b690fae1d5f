package usecase

import (
	"context"
	"time"
)

// CreatePostInput defines the payload for creating a post. OwnerID may come
// in the body; an explicit user_id query parameter wins when both are set.
type CreatePostInput struct {
	Type      string  `json:"type" validate:"omitempty,max=20"`
	Title     string  `json:"title" validate:"required,max=200"`
	Content   string  `json:"content" validate:"required"`
	Excerpt   string  `json:"excerpt" validate:"required,max=500"`
	Author    string  `json:"author" validate:"required,max=100"`
	Tags      *string `json:"tags" validate:"omitempty,max=200"`
	CoverURL  *string `json:"cover_url" validate:"omitempty,max=500"`
	ImageURLs *string `json:"image_urls"`
	OwnerID   *uint   `json:"owner_id" validate:"omitempty,gt=0"`
}

// UpdatePostInput defines a partial update. Nil fields are left untouched.
// The author is intentionally not updatable.
type UpdatePostInput struct {
	Type      *string `json:"type" validate:"omitempty,max=20"`
	Title     *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content   *string `json:"content" validate:"omitempty,min=1"`
	Excerpt   *string `json:"excerpt" validate:"omitempty,min=1,max=500"`
	Tags      *string `json:"tags" validate:"omitempty,max=200"`
	CoverURL  *string `json:"cover_url" validate:"omitempty,max=500"`
	ImageURLs *string `json:"image_urls"`
}

// PostOutput is the post record shape returned by the API.
type PostOutput struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	Tags      *string   `json:"tags"`
	CoverURL  *string   `json:"cover_url"`
	ImageURLs *string   `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uint      `json:"owner_id"`
}

// DefaultListLimit is applied when a caller does not specify a page size.
// No upper bound is enforced.
const DefaultListLimit = 100

// PostUsecase defines the interface for post business operations.
type PostUsecase interface {
	// Create persists a new post. ownerID, when non-nil, overrides the
	// payload's owner_id. Owner existence is not pre-checked.
	Create(ctx context.Context, input *CreatePostInput, ownerID *uint) (*PostOutput, error)

	// List returns posts newest first, paginated by offset and limit.
	List(ctx context.Context, skip, limit int) ([]*PostOutput, error)

	// Get returns a single post or a not-found error.
	Get(ctx context.Context, postID uint) (*PostOutput, error)

	// ListByOwner returns all posts for the owner, newest first. An
	// unknown owner yields an empty list, indistinguishable from a user
	// with no posts.
	ListByOwner(ctx context.Context, ownerID uint) ([]*PostOutput, error)

	// Update applies the non-nil fields of input. When requesterID is
	// supplied and differs from the post's owner, the update is forbidden.
	Update(ctx context.Context, postID uint, input *UpdatePostInput, requesterID *uint) (*PostOutput, error)

	// Delete removes a post and its favorites, with the same ownership
	// check as Update.
	Delete(ctx context.Context, postID uint, requesterID *uint) error
}
