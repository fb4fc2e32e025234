package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ait/internal/config"
	"ait/internal/services"
	mem "ait/pkg/memcache"
	"ait/pkg/utils"
)

var Module = fx.Provide(
	provideBudgetTable,
	services.NewPDFService,
	fx.Annotate(providePlannerService, fx.ParamTags(`name:"planner"`)),
)

func provideBudgetTable(cfg *config.AppConfig) services.BudgetTable {
	return services.BudgetTable{
		Rates:    cfg.Planner.BudgetRates,
		Default:  cfg.Planner.DefaultDailyRate,
		Currency: cfg.Planner.Currency,
	}
}

func providePlannerService(
	backend *utils.Backend,
	cache mem.ItineraryCache,
	budgets services.BudgetTable,
	cfg *config.AppConfig,
	logger *zap.Logger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(backend, cache, budgets, cfg.Planner.MaxTripDays, logger)
}
