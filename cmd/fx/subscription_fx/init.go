package subscription_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/repositories"
	"soundwave/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, provideSubscriptionRepo, provideSubscriptionService)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	planRepo repositories.PlanRepository,
	subRepo repositories.SubscriptionRepository,
	log *zap.Logger,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(planRepo, subRepo, log)
}
