package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post. There is no existence check on the owner: an
// invalid owner surfaces as a foreign-key violation from the storage layer.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// FindByID retrieves a single post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDs retrieves all posts matching the given IDs, in no particular order.
func (repo *postRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return []*entity.Post{}, nil
	}

	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by ids")
	}

	return toPostDomainSlice(postModels), nil
}

// List retrieves posts newest first, paginated by offset and limit.
func (repo *postRepository) List(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomainSlice(postModels), nil
}

// FindByOwner retrieves all posts owned by the given user, newest first.
func (repo *postRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by owner")
	}

	return toPostDomainSlice(postModels), nil
}

// UpdateFields applies a partial update; only the columns in fields change.
func (repo *postRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post and its favorites. Browsing history referencing the
// post is deliberately not touched here; the FK's declared action applies
// where the engine enforces it.
func (repo *postRepository) Delete(ctx context.Context, id uint) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("post_id = ?", id).Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete post's favorites")
	}

	result := db.Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Type:      data.Type,
		Title:     data.Title,
		Content:   data.Content,
		Excerpt:   data.Excerpt,
		Author:    data.Author,
		Tags:      data.Tags,
		CoverURL:  data.CoverURL,
		ImageURLs: data.ImageURLs,
		CreatedAt: data.CreatedAt,
		OwnerID:   data.OwnerID,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		Type:      data.Type,
		Title:     data.Title,
		Content:   data.Content,
		Excerpt:   data.Excerpt,
		Author:    data.Author,
		Tags:      data.Tags,
		CoverURL:  data.CoverURL,
		ImageURLs: data.ImageURLs,
		CreatedAt: data.CreatedAt,
		OwnerID:   data.OwnerID,
	}
}

func toPostDomainSlice(postModels []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}
