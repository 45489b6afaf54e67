package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type FollowRepository interface {
	Add(ctx context.Context, userID, artistID uuid.UUID) error
	Remove(ctx context.Context, userID, artistID uuid.UUID) (bool, error)
	List(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Follow, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (f *followRepository) Add(ctx context.Context, userID, artistID uuid.UUID) error {
	return f.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Artist").
		Create(&db_models.Follow{UserID: userID, ArtistID: artistID}).Error
}

func (f *followRepository) Remove(ctx context.Context, userID, artistID uuid.UUID) (bool, error) {
	res := f.db.WithContext(ctx).
		Where("user_id = ? AND artist_id = ?", userID, artistID).
		Delete(&db_models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (f *followRepository) List(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Follow, int64, error) {
	return paginate[db_models.Follow](ctx, f.db, q, "created_at DESC",
		[]Filter{Eq("user_id", userID)}, "Artist")
}
