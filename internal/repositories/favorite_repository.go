package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type FavoriteRepository interface {
	// Add is idempotent; a second add of the same pair is a no-op.
	Add(ctx context.Context, userID, songID uuid.UUID) error
	Remove(ctx context.Context, userID, songID uuid.UUID) (bool, error)
	List(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Favorite, int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (f *favoriteRepository) Add(ctx context.Context, userID, songID uuid.UUID) error {
	return f.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Song").
		Create(&db_models.Favorite{UserID: userID, SongID: songID}).Error
}

func (f *favoriteRepository) Remove(ctx context.Context, userID, songID uuid.UUID) (bool, error) {
	res := f.db.WithContext(ctx).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Delete(&db_models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (f *favoriteRepository) List(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Favorite, int64, error) {
	return paginate[db_models.Favorite](ctx, f.db, q, "created_at DESC",
		[]Filter{Eq("user_id", userID)}, "Song", "Song.Artist")
}
