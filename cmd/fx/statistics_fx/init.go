package statistics_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/repositories"
	"soundwave/internal/services"
)

var Module = fx.Provide(
	provideStatisticsRepo, provideStatisticsService,
)

func provideStatisticsRepo(db *gorm.DB) repositories.StatisticsRepository {
	return repositories.NewStatisticsRepository(db)
}

func provideStatisticsService(repo repositories.StatisticsRepository, log *zap.Logger) services.StatisticsServiceInterface {
	return services.NewStatisticsService(repo, log)
}
