package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type RatingSummary struct {
	Average float64 `gorm:"column:average"`
	Count   int64   `gorm:"column:count"`
}

type RatingRepository interface {
	// Upsert keeps one rating per (user, song); a second call overwrites score and comment.
	Upsert(ctx context.Context, rating *db_models.Rating) error
	ListBySong(ctx context.Context, q utils.PageQuery, songID uuid.UUID) ([]db_models.Rating, int64, error)
	Summary(ctx context.Context, songID uuid.UUID) (RatingSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *db_models.Rating) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "song_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "comment", "updated_at"}),
		}).
		Create(rating).Error
}

func (r *ratingRepository) ListBySong(ctx context.Context, q utils.PageQuery, songID uuid.UUID) ([]db_models.Rating, int64, error) {
	return paginate[db_models.Rating](ctx, r.db, q, "updated_at DESC", []Filter{Eq("song_id", songID)})
}

func (r *ratingRepository) Summary(ctx context.Context, songID uuid.UUID) (RatingSummary, error) {
	var out RatingSummary
	err := r.db.WithContext(ctx).
		Model(&db_models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("song_id = ?", songID).
		Scan(&out).Error
	return out, err
}
