package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBudget(t *testing.T) {
	tests := []struct {
		tier      string
		days      int
		wantDaily int
	}{
		{"budget", 2, 3000},
		{"middle", 3, 10000},
		{"rich", 1, 20000},
		{" Rich ", 4, 20000},
		{"", 5, 5000},
		{"luxury", 2, 5000},
		{"all", 1, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			got := EstimateBudget(tt.tier, tt.days)
			assert.Equal(t, tt.wantDaily, got.DailyRate)
			assert.Equal(t, tt.wantDaily*tt.days, got.Total)
			assert.Equal(t, tt.days, got.TotalDays)
			assert.Equal(t, "INR", got.Currency)
		})
	}
}

func TestBudgetTable_CustomRates(t *testing.T) {
	table := BudgetTable{
		Rates:    map[string]int{"backpacker": 1500},
		Default:  4000,
		Currency: "INR",
	}

	assert.Equal(t, 1500, table.DailyRate("BACKPACKER"))
	assert.Equal(t, 4000, table.DailyRate("middle"))
	assert.Equal(t, 12000, table.Estimate("middle", 3).Total)
}
