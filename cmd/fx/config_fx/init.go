package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"soundwave/internal/config"
	"soundwave/pkg/logger"
)

var Module = fx.Provide(config.Load, provideLogger)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewZapLogger(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}
