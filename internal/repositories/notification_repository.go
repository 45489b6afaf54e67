package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *db_models.Notification) error
	List(ctx context.Context, q utils.PageQuery, userID uuid.UUID, isRead *bool) ([]db_models.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	// DeleteReadBefore hard-deletes read notifications created before cutoff.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) Create(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n *notificationRepository) List(ctx context.Context, q utils.PageQuery, userID uuid.UUID, isRead *bool) ([]db_models.Notification, int64, error) {
	filters := []Filter{Eq("user_id", userID)}
	if isRead != nil {
		filters = append(filters, Eq("is_read", *isRead))
	}
	return paginate[db_models.Notification](ctx, n.db, q, "created_at DESC", filters)
}

func (n *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (n *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (n *notificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := n.db.WithContext(ctx).
		Unscoped().
		Where("is_read = ? AND created_at < ?", true, cutoff.Unix()).
		Delete(&db_models.Notification{})
	return res.RowsAffected, res.Error
}
