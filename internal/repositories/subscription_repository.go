package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
)

type SubscriptionRepository interface {
	// FindCurrent returns the newest active, unexpired subscription of the user.
	FindCurrent(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.Subscription, error)
	FindByID(ctx context.Context, id int64) (*db_models.Subscription, error)
	// Cancel deactivates an active subscription owned by userID.
	Cancel(ctx context.Context, id int64, userID uuid.UUID, at time.Time) (bool, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) FindCurrent(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ? AND is_active = ? AND end_date > ?", userID, true, now).
		Order("end_date DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *subscriptionRepository) FindByID(ctx context.Context, id int64) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).Preload("Plan").First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *subscriptionRepository) Cancel(ctx context.Context, id int64, userID uuid.UUID, at time.Time) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Updates(map[string]interface{}{
			"is_active":   false,
			"canceled_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
