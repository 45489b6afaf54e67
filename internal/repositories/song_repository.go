package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type SongFilter struct {
	Title    string
	ArtistID *uuid.UUID
	Genre    string
}

func (f SongFilter) filters() []Filter {
	var out []Filter
	if f.Title != "" {
		out = append(out, ILike("title", f.Title))
	}
	if f.ArtistID != nil {
		out = append(out, Eq("artist_id", *f.ArtistID))
	}
	if f.Genre != "" {
		out = append(out, HasElement("genres", f.Genre))
	}
	return out
}

type SongRepository interface {
	List(ctx context.Context, q utils.PageQuery, filter SongFilter) ([]db_models.Song, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Song, error)
	// FindWithRenditions loads the song together with its asset and renditions.
	FindWithRenditions(ctx context.Context, id uuid.UUID) (*db_models.Song, error)
	Create(ctx context.Context, song *db_models.Song) error
	Update(ctx context.Context, song *db_models.Song) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type songRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

func (s *songRepository) List(ctx context.Context, q utils.PageQuery, filter SongFilter) ([]db_models.Song, int64, error) {
	return paginate[db_models.Song](ctx, s.db, q, "created_at DESC", filter.filters(), "Artist")
}

func (s *songRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Song, error) {
	var song db_models.Song
	err := s.db.WithContext(ctx).
		Preload("Artist").
		First(&song, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &song, nil
}

func (s *songRepository) FindWithRenditions(ctx context.Context, id uuid.UUID) (*db_models.Song, error) {
	var song db_models.Song
	err := s.db.WithContext(ctx).
		Preload("Asset.Renditions").
		First(&song, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &song, nil
}

func (s *songRepository) Create(ctx context.Context, song *db_models.Song) error {
	return s.db.WithContext(ctx).Omit("Artist", "Asset").Create(song).Error
}

func (s *songRepository) Update(ctx context.Context, song *db_models.Song) error {
	return s.db.WithContext(ctx).Omit("Artist", "Asset").Save(song).Error
}

func (s *songRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&db_models.Song{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
