package metrics_fx

import (
	"go.uber.org/fx"

	"ait/pkg/metrics"
)

var Module = fx.Provide(metrics.InitRegistry)
