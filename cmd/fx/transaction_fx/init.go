package transaction_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"soundwave/internal/config"
	"soundwave/internal/repositories"
	"soundwave/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideTransactionService, provideWebhookService,
)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideTransactionService(
	txnRepo repositories.TransactionRepository,
	planRepo repositories.PlanRepository,
	log *zap.Logger,
) services.TransactionServiceInterface {
	return services.NewTransactionService(txnRepo, planRepo, log)
}

func provideWebhookService(txnRepo repositories.TransactionRepository, cfg *config.Config, log *zap.Logger) services.PaymentWebhookServiceInterface {
	if cfg.Sepay.WebhookSecret == "" {
		log.Warn("SEPAY_WEBHOOK_SECRET not set, webhook signatures will not be verified")
	}
	return services.NewPaymentWebhookService(txnRepo, cfg.Sepay, log)
}
