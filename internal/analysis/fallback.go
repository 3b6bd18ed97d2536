package analysis

import (
	"context"

	"hotelops-backend/internal/domain"
)

// FallbackAnalyzer is the deterministic safety net behind the remote analyzer.
// It is intentionally much simpler than the rule engine: a three-tier margin
// score, two forecast templates, a fixed recommendation list and a synthesized
// three-period outlook. It never fails and reads no clock.
type FallbackAnalyzer struct{}

func NewFallbackAnalyzer() *FallbackAnalyzer {
	return &FallbackAnalyzer{}
}

func (a *FallbackAnalyzer) Analyze(_ context.Context, snapshot domain.ComprehensiveSnapshot) (domain.AnalysisResult, error) {
	fin := snapshot.Financial

	score := 40
	switch margin := fin.ProfitMargin(); {
	case margin > 30:
		score = 85
	case margin > 10:
		score = 65
	}

	forecast := "Attention! Expenses exceed revenue. Urgent cost control required."
	if fin.NetProfit() > 0 {
		forecast = "The financial picture looks positive. Maintain current performance."
	}

	baseRevenue := fin.Revenue
	if baseRevenue <= 0 {
		baseRevenue = 100000
	}

	return domain.AnalysisResult{
		Score:    score,
		Forecast: forecast,
		Recommendations: []string{
			"Keep monitoring current performance",
			"Evaluate energy saving measures",
			"Raise occupancy with marketing campaigns",
			"Optimize staff productivity",
			"Improve the guest experience",
		},
		MonthlyForecast: []domain.MonthlyForecastItem{
			{Month: "Month 1", Revenue: baseRevenue * 1.00, Occupancy: fin.OccupancyRate},
			{Month: "Month 2", Revenue: baseRevenue * 1.05, Occupancy: fin.OccupancyRate + 3},
			{Month: "Month 3", Revenue: baseRevenue * 1.08, Occupancy: fin.OccupancyRate + 5},
		},
		BudgetInsights: []domain.BudgetInsight{
			{Category: "Energy", Current: fin.Expense * 0.20, Suggested: fin.Expense * 0.15, SavingTip: "LED lighting and smart thermostats"},
			{Category: "Personnel", Current: fin.Expense * 0.35, Suggested: fin.Expense * 0.32, SavingTip: "Shift optimization"},
		},
	}, nil
}
