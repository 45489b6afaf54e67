package library_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/repositories"
	"soundwave/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFollowRepo, providePlaylistRepo,
	provideFavoriteService, provideFollowService, providePlaylistService,
)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFollowRepo(db *gorm.DB) repositories.FollowRepository {
	return repositories.NewFollowRepository(db)
}

func providePlaylistRepo(db *gorm.DB) repositories.PlaylistRepository {
	return repositories.NewPlaylistRepository(db)
}

func provideFavoriteService(favRepo repositories.FavoriteRepository, songRepo repositories.SongRepository, log *zap.Logger) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favRepo, songRepo, log)
}

func provideFollowService(followRepo repositories.FollowRepository, artistRepo repositories.ArtistRepository, log *zap.Logger) services.FollowServiceInterface {
	return services.NewFollowService(followRepo, artistRepo, log)
}

func providePlaylistService(playlistRepo repositories.PlaylistRepository, songRepo repositories.SongRepository, log *zap.Logger) services.PlaylistServiceInterface {
	return services.NewPlaylistService(playlistRepo, songRepo, log)
}
