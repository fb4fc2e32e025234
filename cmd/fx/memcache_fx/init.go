package memcache_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ait/internal/config"
	mem "ait/pkg/memcache"
)

var Module = fx.Provide(provideItineraryCache)

func provideItineraryCache(cfg *config.AppConfig, logger *zap.Logger) mem.ItineraryCache {
	if cfg.Planner.CacheTTL <= 0 {
		logger.Info("itinerary cache disabled")
	}
	return mem.NewItineraryCache(cfg.Planner.CacheTTL)
}
