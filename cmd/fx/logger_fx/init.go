package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ait/internal/config"
	"ait/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *config.AppConfig) (*zap.Logger, error) {
	log, err := logger.New(cfg.Logging.Level, zap.String("service", "ait"))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stdout sync fails on some terminals; nothing to do about it
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}
