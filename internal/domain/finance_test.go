package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinancialSnapshot_ProfitMargin(t *testing.T) {
	assert.InDelta(t, 50, FinancialSnapshot{Revenue: 200000, Expense: 100000}.ProfitMargin(), 0.001)
	assert.InDelta(t, -12.5, FinancialSnapshot{Revenue: 80000, Expense: 90000}.ProfitMargin(), 0.001)
	assert.Zero(t, FinancialSnapshot{Revenue: 0, Expense: 5000}.ProfitMargin())
	assert.Zero(t, FinancialSnapshot{Revenue: -10, Expense: 5000}.ProfitMargin())
}

func TestAnalysisResult_Validate(t *testing.T) {
	week := make([]WeeklyForecastItem, 7)

	t.Run("Valid", func(t *testing.T) {
		r := AnalysisResult{Score: 75, Forecast: "ok", WeeklyForecast: week}
		assert.NoError(t, r.Validate())
	})

	t.Run("Score out of range", func(t *testing.T) {
		assert.Error(t, AnalysisResult{Score: 101}.Validate())
		assert.Error(t, AnalysisResult{Score: -1}.Validate())
	})

	t.Run("Weekly forecast must be empty or 7 days", func(t *testing.T) {
		r := AnalysisResult{Score: 50, WeeklyForecast: week[:3]}
		assert.Error(t, r.Validate())
		assert.NoError(t, AnalysisResult{Score: 50}.Validate())
	})

	t.Run("Distribution percentage bounds", func(t *testing.T) {
		r := AnalysisResult{Score: 50, RevenueDistribution: []RevenueDistributionItem{{Category: "Rooms", Percentage: 120}}}
		assert.Error(t, r.Validate())
	})
}

func TestCheckoutResult(t *testing.T) {
	assert.True(t, CheckoutResult{Outcome: CheckoutCompleted}.Succeeded())
	assert.True(t, CheckoutResult{Outcome: CheckoutAlreadyCompleted}.Succeeded())
	assert.False(t, CheckoutResult{Outcome: CheckoutBalanceOutstanding}.Succeeded())

	r := CheckoutResult{Outcome: CheckoutBalanceOutstanding, Remaining: 150}
	assert.Equal(t, "balance outstanding: remaining=150.00", r.Message())
}
