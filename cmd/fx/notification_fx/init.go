package notification_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/config"
	"soundwave/internal/repositories"
	"soundwave/internal/services"
)

const cleanupInterval = time.Hour

var Module = fx.Options(
	fx.Provide(provideNotificationRepo, provideNotificationService, provideCleanupScheduler),
	fx.Invoke(startCleanupScheduler),
)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(repo repositories.NotificationRepository, cfg *config.Config, log *zap.Logger) services.NotificationServiceInterface {
	return services.NewNotificationService(repo, cfg.NotificationRetentionDays, log)
}

func provideCleanupScheduler(svc services.NotificationServiceInterface, log *zap.Logger) *services.CleanupScheduler {
	return services.NewCleanupScheduler(svc, cleanupInterval, log)
}

func startCleanupScheduler(lc fx.Lifecycle, scheduler *services.CleanupScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
