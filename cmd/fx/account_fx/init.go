package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/config"
	"soundwave/internal/repositories"
	"soundwave/internal/services"
	"soundwave/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo, provideTokenManager, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, subRepo, tokens, log)
}
