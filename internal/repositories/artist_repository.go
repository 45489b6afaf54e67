package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
	"soundwave/pkg/utils"
)

type ArtistRepository interface {
	List(ctx context.Context, q utils.PageQuery, name string) ([]db_models.Artist, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Artist, error)
	Create(ctx context.Context, artist *db_models.Artist) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (a *artistRepository) List(ctx context.Context, q utils.PageQuery, name string) ([]db_models.Artist, int64, error) {
	var filters []Filter
	if name != "" {
		filters = append(filters, ILike("name", name))
	}
	return paginate[db_models.Artist](ctx, a.db, q, "name ASC", filters)
}

func (a *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Artist, error) {
	var artist db_models.Artist
	err := a.db.WithContext(ctx).First(&artist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (a *artistRepository) Create(ctx context.Context, artist *db_models.Artist) error {
	return a.db.WithContext(ctx).Omit("Songs").Create(artist).Error
}
