package repository

import (
	"context"
	"errors"
	"time"

	"mirrortime/internal/models"

	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository returns a Postgres-backed HistoryRepository implementation.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, item *models.HistoryItem) error {
	if item.SavedAt.IsZero() {
		item.SavedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *historyRepository) FindRecentDuplicate(ctx context.Context, userID int64, timeStr, itemType string, window time.Duration) (*models.HistoryItem, error) {
	var item models.HistoryItem
	cutoff := time.Now().UTC().Add(-window)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND time = ? AND type = ? AND saved_at > ?",
			userID, timeStr, itemType, cutoff).
		Order("saved_at DESC").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *historyRepository) ListByUserID(ctx context.Context, userID int64) ([]models.HistoryItem, error) {
	var items []models.HistoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *historyRepository) Delete(ctx context.Context, id int64) error {
	// Deleting a missing row is a no-op by contract.
	if err := r.db.WithContext(ctx).Delete(&models.HistoryItem{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
