package domain

import "fmt"

// FinancialSnapshot is an aggregated read-only view of the hotel's financial
// counters for the current period. It is recomputed from the operational tables
// on every request and never cached.
type FinancialSnapshot struct {
	Revenue          float64            `json:"revenue"`
	Expense          float64            `json:"expense"`
	OccupancyRate    float64            `json:"occupancy_rate"`
	RevenueChangePct float64            `json:"revenue_change_pct"`
	ExpenseChangePct float64            `json:"expense_change_pct"`
	ExpenseBreakdown map[string]float64 `json:"expense_breakdown"`
}

// NetProfit returns revenue minus expense.
func (s FinancialSnapshot) NetProfit() float64 {
	return s.Revenue - s.Expense
}

// ProfitMargin returns the net profit as a percentage of revenue,
// or 0 when revenue is not positive.
func (s FinancialSnapshot) ProfitMargin() float64 {
	if s.Revenue <= 0 {
		return 0
	}
	return s.NetProfit() / s.Revenue * 100
}

// ComprehensiveSnapshot extends the financial snapshot with occupancy,
// reservation, customer and staff counters. It feeds the AI-augmented analysis.
type ComprehensiveSnapshot struct {
	Financial FinancialSnapshot `json:"financial"`

	TotalRooms       int `json:"total_rooms"`
	AvailableRooms   int `json:"available_rooms"`
	OccupiedRooms    int `json:"occupied_rooms"`
	CleaningRooms    int `json:"cleaning_rooms"`
	MaintenanceRooms int `json:"maintenance_rooms"`

	ActiveReservations    int `json:"active_reservations"`
	PendingReservations   int `json:"pending_reservations"`
	CompletedReservations int `json:"completed_reservations"`
	CancelledReservations int `json:"cancelled_reservations"`

	TotalCustomers  int `json:"total_customers"`
	ActiveCustomers int `json:"active_customers"`

	TotalStaff        int    `json:"total_staff"`
	StaffByDepartment string `json:"staff_by_department"`
}

// WeeklyForecastItem is one projected day in a 7-day forecast.
type WeeklyForecastItem struct {
	Day       string  `json:"day"`
	Revenue   float64 `json:"revenue"`
	Occupancy float64 `json:"occupancy"`
}

// MonthlyForecastItem is one projected period in the fallback's synthesized forecast.
type MonthlyForecastItem struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Occupancy float64 `json:"occupancy"`
}

// RevenueDistributionItem is one slice of the revenue-by-category breakdown.
type RevenueDistributionItem struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

// BudgetInsight suggests a target amount for one expense category.
type BudgetInsight struct {
	Category  string  `json:"category"`
	Current   float64 `json:"current"`
	Suggested float64 `json:"suggested"`
	SavingTip string  `json:"savingTip"`
}

// SavingAmount returns the absolute saving suggested by the insight.
func (b BudgetInsight) SavingAmount() float64 {
	return b.Current - b.Suggested
}

// AnalysisResult is the outcome of a financial health analysis. Recommendations
// are ordered: urgent items are inserted at the head, informational items are
// appended, so urgency ordering is preserved for display.
type AnalysisResult struct {
	Score               int                       `json:"score"`
	Forecast            string                    `json:"forecast"`
	Recommendations     []string                  `json:"recommendations"`
	WeeklyForecast      []WeeklyForecastItem      `json:"weeklyForecast,omitempty"`
	MonthlyForecast     []MonthlyForecastItem     `json:"monthlyForecast,omitempty"`
	RevenueDistribution []RevenueDistributionItem `json:"revenueDistribution,omitempty"`
	BudgetInsights      []BudgetInsight           `json:"budgetInsights,omitempty"`
}

// Validate checks the structural invariants of an analysis result: score within
// [0,100], a weekly forecast of exactly 7 entries or none, and revenue
// distribution percentages inside [0,100].
func (r AnalysisResult) Validate() error {
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("score %d outside [0,100]", r.Score)
	}
	if n := len(r.WeeklyForecast); n != 0 && n != 7 {
		return fmt.Errorf("weekly forecast has %d entries, want 0 or 7", n)
	}
	for _, d := range r.RevenueDistribution {
		if d.Percentage < 0 || d.Percentage > 100 {
			return fmt.Errorf("revenue distribution %q has percentage %.1f outside [0,100]", d.Category, d.Percentage)
		}
	}
	return nil
}
