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

// browsingHistoryRepository implements the repository.BrowsingHistoryRepository interface using GORM.
type browsingHistoryRepository struct {
	db *gorm.DB
}

// NewBrowsingHistoryRepository is the constructor for browsingHistoryRepository.
func NewBrowsingHistoryRepository(db *gorm.DB) repository.BrowsingHistoryRepository {
	return &browsingHistoryRepository{db: db}
}

// Create persists a new browsing history row. ViewedAt is server-assigned at
// insert time.
func (repo *browsingHistoryRepository) Create(ctx context.Context, history *entity.BrowsingHistory) error {
	historyM := fromHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user or post reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create browsing history")
	}

	history.ID = historyM.ID
	history.ViewedAt = historyM.ViewedAt

	return nil
}

// FindByUserAndPost retrieves the history row for a (user, post) pair.
func (repo *browsingHistoryRepository) FindByUserAndPost(ctx context.Context, userID, postID uint) (*entity.BrowsingHistory, error) {
	var historyM model.BrowsingHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&historyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHistoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find browsing history by user and post")
	}

	return toHistoryDomain(&historyM), nil
}

// FindByUser retrieves a user's history ordered by view time descending.
func (repo *browsingHistoryRepository) FindByUser(ctx context.Context, userID uint) ([]*entity.BrowsingHistory, error) {
	var historyModels []*model.BrowsingHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find browsing history by user")
	}

	histories := make([]*entity.BrowsingHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		histories = append(histories, toHistoryDomain(historyM))
	}

	return histories, nil
}

// DeleteByID removes a single history row.
func (repo *browsingHistoryRepository) DeleteByID(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BrowsingHistoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete browsing history")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHistoryNotFound
	}

	return nil
}

// DeleteAllForUser removes every history row for the user and returns the
// number of rows deleted.
func (repo *browsingHistoryRepository) DeleteAllForUser(ctx context.Context, userID uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.BrowsingHistoryModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear browsing history")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toHistoryDomain converts a GORM BrowsingHistoryModel to a domain BrowsingHistory entity.
func toHistoryDomain(data *model.BrowsingHistoryModel) *entity.BrowsingHistory {
	if data == nil {
		return nil
	}

	return &entity.BrowsingHistory{
		ID:       data.ID,
		UserID:   data.UserID,
		PostID:   data.PostID,
		ViewedAt: data.ViewedAt,
	}
}

// fromHistoryDomain converts a domain BrowsingHistory entity to a GORM BrowsingHistoryModel.
func fromHistoryDomain(data *entity.BrowsingHistory) *model.BrowsingHistoryModel {
	if data == nil {
		return nil
	}

	return &model.BrowsingHistoryModel{
		ID:       data.ID,
		UserID:   data.UserID,
		PostID:   data.PostID,
		ViewedAt: data.ViewedAt,
	}
}
