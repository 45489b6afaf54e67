package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/repositories"
	"soundwave/internal/services"
)

var Module = fx.Provide(
	provideSongRepo, provideArtistRepo, provideGenreRepo, provideCatalogService)

func provideSongRepo(db *gorm.DB) repositories.SongRepository {
	return repositories.NewSongRepository(db)
}

func provideArtistRepo(db *gorm.DB) repositories.ArtistRepository {
	return repositories.NewArtistRepository(db)
}

func provideGenreRepo(db *gorm.DB) repositories.GenreRepository {
	return repositories.NewGenreRepository(db)
}

func provideCatalogService(
	songRepo repositories.SongRepository,
	artistRepo repositories.ArtistRepository,
	genreRepo repositories.GenreRepository,
	log *zap.Logger,
) services.CatalogServiceInterface {
	return services.NewCatalogService(songRepo, artistRepo, genreRepo, log)
}
