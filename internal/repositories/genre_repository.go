package repositories

import (
	"context"

	"gorm.io/gorm"

	"soundwave/internal/models/db_models"
)

type GenreRepository interface {
	ListAll(ctx context.Context) ([]db_models.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (g *genreRepository) ListAll(ctx context.Context) ([]db_models.Genre, error) {
	var genres []db_models.Genre
	if err := g.db.WithContext(ctx).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}
