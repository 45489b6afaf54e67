package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *db_models.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Playlist, error)
	ListByOwner(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Playlist, int64, error)
	Update(ctx context.Context, playlist *db_models.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AddSong appends the song at the end of the playlist; re-adding is a no-op.
	AddSong(ctx context.Context, playlistID, songID uuid.UUID) error
	RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) (bool, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (p *playlistRepository) Create(ctx context.Context, playlist *db_models.Playlist) error {
	return p.db.WithContext(ctx).Omit("Songs").Create(playlist).Error
}

func (p *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Playlist, error) {
	var playlist db_models.Playlist
	err := p.db.WithContext(ctx).
		Preload("Songs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Songs.Song").
		First(&playlist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &playlist, nil
}

func (p *playlistRepository) ListByOwner(ctx context.Context, q utils.PageQuery, userID uuid.UUID) ([]db_models.Playlist, int64, error) {
	return paginate[db_models.Playlist](ctx, p.db, q, "created_at DESC", []Filter{Eq("user_id", userID)})
}

func (p *playlistRepository) Update(ctx context.Context, playlist *db_models.Playlist) error {
	return p.db.WithContext(ctx).
		Model(playlist).
		Select("name", "description", "is_public").
		Updates(playlist).Error
}

func (p *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&db_models.PlaylistSong{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Playlist{}, "id = ?", id).Error
	})
}

func (p *playlistRepository) AddSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&db_models.PlaylistSong{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Omit("Song").
			Create(&db_models.PlaylistSong{
				PlaylistID: playlistID,
				SongID:     songID,
				Position:   next,
			}).Error
	})
}

func (p *playlistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) (bool, error) {
	res := p.db.WithContext(ctx).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Delete(&db_models.PlaylistSong{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
