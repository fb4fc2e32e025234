package config_fx

import (
	"go.uber.org/fx"

	"ait/internal/config"
)

var Module = fx.Provide(config.Load)
