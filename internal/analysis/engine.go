// Package analysis implements the financial health decision pipeline: a
// deterministic rule engine producing a bounded health score with prioritized
// recommendations, and the Analyzer strategies that optionally augment it with
// a remote generative analysis.
package analysis

import (
	"time"

	"hotelops-backend/internal/domain"
)

// Rule is one step of the evaluation fold. Each rule receives the snapshot,
// the injected calendar month and the in-progress result, and returns an
// updated copy. Ordering is significant and fixed by the engine.
type Rule struct {
	Name  string
	Apply func(s domain.FinancialSnapshot, month time.Month, r domain.AnalysisResult) domain.AnalysisResult
}

// Engine evaluates a financial snapshot against an ordered rule list. It is
// pure: no I/O, no clock reads. The seasonal rule takes the current month as a
// parameter so evaluation stays reproducible.
type Engine struct {
	rules []Rule
}

// NewEngine builds the engine with the production rule order: one mutually
// exclusive base classification, the independent adjustment rules, the
// forecast outlook suffix, and the finishing clamp.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			{Name: "base_classification", Apply: classifyBase},
			{Name: "energy_expense", Apply: adjustEnergyExpense},
			{Name: "staff_expense", Apply: adjustStaffExpense},
			{Name: "revenue_trend", Apply: adjustRevenueTrend},
			{Name: "expense_trend", Apply: adjustExpenseTrend},
			{Name: "occupancy", Apply: adjustOccupancy},
			{Name: "profit_margin", Apply: adjustProfitMargin},
			{Name: "season", Apply: adjustSeason},
			{Name: "expense_concentration", Apply: adjustExpenseConcentration},
			{Name: "forecast_outlook", Apply: appendForecastOutlook},
			{Name: "finish", Apply: finish},
		},
	}
}

// Evaluate folds the snapshot through the rule list and returns the final
// result. Identical snapshot and month always yield an identical result.
func (e *Engine) Evaluate(s domain.FinancialSnapshot, month time.Month) domain.AnalysisResult {
	var r domain.AnalysisResult
	for _, rule := range e.rules {
		r = rule.Apply(s, month, r)
	}
	return r
}

// Rules returns the rule names in evaluation order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}
