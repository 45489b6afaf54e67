package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
)

type CandidateSong struct {
	ID        uuid.UUID      `gorm:"column:id"`
	Title     string         `gorm:"column:title"`
	ArtistID  uuid.UUID      `gorm:"column:artist_id"`
	CoverURL  string         `gorm:"column:cover_url"`
	Genres    pq.StringArray `gorm:"column:genres;type:text[]"`
	PlayCount int64          `gorm:"column:play_count"`
	AvgRating float64        `gorm:"column:avg_rating"`
}

type RecommendationRepository interface {
	// FavoriteGenres returns the genre list of every song the user favorited.
	FavoriteGenres(ctx context.Context, userID uuid.UUID) ([]pq.StringArray, error)
	FollowedArtistIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// Candidates returns up to poolSize songs the user has not favorited, most played first.
	Candidates(ctx context.Context, userID uuid.UUID, poolSize int) ([]CandidateSong, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) FavoriteGenres(ctx context.Context, userID uuid.UUID) ([]pq.StringArray, error) {
	var genres []pq.StringArray
	err := r.db.WithContext(ctx).
		Table("favorites").
		Joins("JOIN songs ON songs.id = favorites.song_id AND songs.deleted_at IS NULL").
		Where("favorites.user_id = ?", userID).
		Pluck("songs.genres", &genres).Error
	return genres, err
}

func (r *recommendationRepository) FollowedArtistIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.Follow{}).
		Where("user_id = ?", userID).
		Pluck("artist_id", &ids).Error
	return ids, err
}

func (r *recommendationRepository) Candidates(ctx context.Context, userID uuid.UUID, poolSize int) ([]CandidateSong, error) {
	var rows []CandidateSong
	err := r.db.WithContext(ctx).
		Table("songs").
		Select(`songs.id, songs.title, songs.artist_id, songs.cover_url, songs.genres, songs.play_count,
			COALESCE(AVG(ratings.score), 0) AS avg_rating`).
		Joins("LEFT JOIN ratings ON ratings.song_id = songs.id AND ratings.deleted_at IS NULL").
		Where("songs.deleted_at IS NULL").
		Where("NOT EXISTS (SELECT 1 FROM favorites f WHERE f.song_id = songs.id AND f.user_id = ?)", userID).
		Group("songs.id").
		Order("songs.play_count DESC").
		Limit(poolSize).
		Scan(&rows).Error
	return rows, err
}
