package rating_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/repositories"
	"soundwave/internal/services"
)

var Module = fx.Provide(
	provideRatingRepo, provideRecommendationRepo, provideRatingService, provideRecommendationService,
)

func provideRatingRepo(db *gorm.DB) repositories.RatingRepository {
	return repositories.NewRatingRepository(db)
}

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(db)
}

func provideRatingService(ratingRepo repositories.RatingRepository, songRepo repositories.SongRepository, log *zap.Logger) services.RatingServiceInterface {
	return services.NewRatingService(ratingRepo, songRepo, log)
}

func provideRecommendationService(repo repositories.RecommendationRepository, log *zap.Logger) services.RecommendationServiceInterface {
	return services.NewRecommendationService(repo, log)
}
