package services

import (
	"strings"

	"ait/internal/models/response_models"
)

// BudgetTable maps budget tiers to a fixed daily rate.
type BudgetTable struct {
	Rates    map[string]int
	Default  int
	Currency string
}

func DefaultBudgetTable() BudgetTable {
	return BudgetTable{
		Rates: map[string]int{
			"budget": 3000,
			"middle": 10000,
			"rich":   20000,
		},
		Default:  5000,
		Currency: "INR",
	}
}

// DailyRate never fails: unknown tiers, including "", get the default rate.
func (t BudgetTable) DailyRate(tier string) int {
	if rate, ok := t.Rates[normalizeTier(tier)]; ok {
		return rate
	}
	return t.Default
}

func (t BudgetTable) Estimate(tier string, totalDays int) response_models.BudgetEstimate {
	daily := t.DailyRate(tier)
	return response_models.BudgetEstimate{
		Tier:      normalizeTier(tier),
		DailyRate: daily,
		TotalDays: totalDays,
		Total:     daily * totalDays,
		Currency:  t.Currency,
	}
}

// EstimateBudget uses the built-in rate table.
func EstimateBudget(tier string, totalDays int) response_models.BudgetEstimate {
	return DefaultBudgetTable().Estimate(tier, totalDays)
}

func normalizeTier(tier string) string {
	return strings.ToLower(strings.TrimSpace(tier))
}
