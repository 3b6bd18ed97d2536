package analysis

import (
	"fmt"
	"time"

	"hotelops-backend/internal/domain"
)

// Result update helpers. Each copies the recommendation slice so a rule output
// never aliases the input it was derived from.

func insertUrgent(r domain.AnalysisResult, rec string) domain.AnalysisResult {
	recs := make([]string, 0, len(r.Recommendations)+1)
	recs = append(recs, rec)
	recs = append(recs, r.Recommendations...)
	r.Recommendations = recs
	return r
}

func appendInfo(r domain.AnalysisResult, rec string) domain.AnalysisResult {
	recs := make([]string, len(r.Recommendations), len(r.Recommendations)+1)
	copy(recs, r.Recommendations)
	r.Recommendations = append(recs, rec)
	return r
}

func lowerScore(r domain.AnalysisResult, delta, floor int) domain.AnalysisResult {
	r.Score -= delta
	if r.Score < floor {
		r.Score = floor
	}
	return r
}

func raiseScore(r domain.AnalysisResult, delta, ceil int) domain.AnalysisResult {
	r.Score += delta
	if r.Score > ceil {
		r.Score = ceil
	}
	return r
}

// ratio guards division by zero: a non-positive denominator yields 0.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// breakdownValue looks the categories up in order and returns the first match,
// so "Energy" shadows "Electricity" when both are present.
func breakdownValue(s domain.FinancialSnapshot, categories ...string) (float64, bool) {
	for _, c := range categories {
		if v, ok := s.ExpenseBreakdown[c]; ok {
			return v, true
		}
	}
	return 0, false
}

// classifyBase seeds score, forecast and the initial recommendations. Exactly
// one branch fires. The expense-coverage branches are checked before the
// surplus branches, and revenue > expense*1.3 is checked before *1.5, matching
// the legacy evaluation order.
func classifyBase(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	expenseRatio := ratio(s.Expense, s.Revenue)

	switch {
	case s.Expense > s.Revenue:
		r.Score = 25
		r.Forecast = "CRITICAL: cash flow at risk! Expenses exceed revenue."
		r.Recommendations = []string{
			"URGENT: stop all non-essential spending immediately",
			"Launch prepayment incentives (10% discount)",
			"Meet with the accountant about debt restructuring",
			"Quick revenue: paid early check-in and late check-out services",
		}
	case expenseRatio > 0.80:
		r.Score = 40
		r.Forecast = "HIGH RISK: expenses are too high, profit margin critically thin."
		r.Recommendations = []string{
			"IMPORTANT: review every expense line item",
			"Cut each department budget by 10%",
			"Cancel unused subscriptions and contracts",
		}
	case expenseRatio > 0.70:
		r.Score = 58
		r.Forecast = "CAUTION: costs are climbing. Optimization needed."
		r.Recommendations = []string{
			"MODERATE: renegotiate supplier prices",
			"Start an energy saving program (LED, thermostats)",
			"Use bulk purchasing for discounts",
		}
	case s.Revenue > s.Expense*1.3:
		r.Score = 82
		r.Forecast = "GOOD: financial health is balanced and positive."
		r.Recommendations = []string{
			"OPPORTUNITY: a good period for investments",
			"Allocate budget to marketing campaigns",
			"Focus on guest experience improvements",
		}
	case s.Revenue > s.Expense*1.5:
		r.Score = 93
		r.Forecast = "EXCELLENT: financial performance is outstanding!"
		r.Recommendations = []string{
			"STRATEGIC: begin growth planning",
			"Set up a staff bonus scheme for motivation",
			"Consider premium segment investments",
			"Review franchise or new-branch opportunities",
		}
	default:
		r.Score = 68
		r.Forecast = "STABLE: the financial picture looks balanced."
		r.Recommendations = []string{
			"Maintain current performance",
			"Keep disciplined monthly budget tracking",
		}
	}
	return r
}

func adjustEnergyExpense(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	cost, ok := breakdownValue(s, "Energy", "Electricity")
	if !ok {
		return r
	}
	energyRatio := ratio(cost, s.Expense)
	switch {
	case energyRatio > 0.25:
		r = lowerScore(r, 15, 15)
		r = insertUrgent(r, fmt.Sprintf("ENERGY ALERT: energy costs at %.1f%% of expenses! Switch to LED lighting, solar panels and smart thermostats", energyRatio*100))
	case energyRatio > 0.18:
		r = lowerScore(r, 8, 20)
		r = appendInfo(r, fmt.Sprintf("ENERGY: energy is %.1f%% of expenses. Run an energy audit", energyRatio*100))
	}
	return r
}

func adjustStaffExpense(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	cost, ok := breakdownValue(s, "Personnel", "Salary")
	if !ok {
		return r
	}
	staffRatio := ratio(cost, s.Expense)
	switch {
	case staffRatio > 0.40:
		r = appendInfo(r, fmt.Sprintf("STAFFING: staff costs at %.1f%% of expenses are very high. Consider shift optimization, part-time roles and cross-training", staffRatio*100))
	case staffRatio < 0.20:
		r = appendInfo(r, "STAFFING: the hotel may be understaffed. Watch service quality")
	}
	return r
}

func adjustRevenueTrend(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	switch {
	case s.RevenueChangePct > 20:
		r = raiseScore(r, 8, 100)
		r = appendInfo(r, fmt.Sprintf("TREND: revenue GREW %.1f%%! Keep scaling the strategies that work", s.RevenueChangePct))
	case s.RevenueChangePct > 10:
		r = raiseScore(r, 4, 100)
		r = appendInfo(r, fmt.Sprintf("POSITIVE: revenue up %.1f%%. Good progress", s.RevenueChangePct))
	case s.RevenueChangePct < -15:
		r = lowerScore(r, 12, 15)
		r = insertUrgent(r, fmt.Sprintf("ALARM: revenue DROPPED %.1f%%! Marketing push, price revision and guest win-back needed NOW", -s.RevenueChangePct))
	case s.RevenueChangePct < -5:
		r = lowerScore(r, 6, 20)
		r = appendInfo(r, fmt.Sprintf("CAUTION: revenue down %.1f%%. Run competitor analysis and marketing", -s.RevenueChangePct))
	}
	return r
}

func adjustExpenseTrend(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	switch {
	case s.ExpenseChangePct > 25:
		r = insertUrgent(r, fmt.Sprintf("WARNING: expenses ROSE %.1f%%! Find the driving line items immediately", s.ExpenseChangePct))
	case s.ExpenseChangePct > 15:
		r = appendInfo(r, fmt.Sprintf("CAUTION: expenses up %.1f%%. Tighten budget control", s.ExpenseChangePct))
	}
	return r
}

func adjustOccupancy(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	occ := s.OccupancyRate
	switch {
	case occ > 90:
		r = appendInfo(r, fmt.Sprintf("OCCUPANCY %.0f%%: very high! Consider raising rates or an overbooking strategy", occ))
	case occ > 70:
		r = appendInfo(r, fmt.Sprintf("OCCUPANCY %.0f%%: healthy level. Protect guest satisfaction", occ))
	case occ < 50:
		r = lowerScore(r, 10, 20)
		r = insertUrgent(r, fmt.Sprintf("OCCUPANCY %.0f%%: LOW! Boost OTA visibility, run flash sales and influencer partnerships", occ))
	default:
		r = appendInfo(r, fmt.Sprintf("OCCUPANCY %.0f%%: mid level. Diversify booking channels", occ))
	}
	return r
}

func adjustProfitMargin(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	margin := s.ProfitMargin()
	switch {
	case margin > 30:
		r = appendInfo(r, fmt.Sprintf("PROFIT MARGIN %.1f%%: excellent! You hold a competitive edge", margin))
	case margin > 0 && margin < 10:
		r = appendInfo(r, fmt.Sprintf("PROFIT MARGIN %.1f%%: very thin. Revisit the pricing strategy", margin))
	}
	return r
}

func adjustSeason(_ domain.FinancialSnapshot, month time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	switch {
	case month >= time.June && month <= time.August:
		r = appendInfo(r, "SEASON: summer! Offer pool access, outdoor events and family packages")
	case month >= time.November || month <= time.February:
		r = appendInfo(r, "SEASON: winter. Target corporate guests, conference packages and hot drink promotions")
	}
	return r
}

func adjustExpenseConcentration(s domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	if len(s.ExpenseBreakdown) == 0 {
		return r
	}
	var topCategory string
	var topAmount float64
	for category, amount := range s.ExpenseBreakdown {
		// Ties break on category name to keep evaluation deterministic.
		if amount > topAmount || (amount == topAmount && (topCategory == "" || category < topCategory)) {
			topCategory, topAmount = category, amount
		}
	}
	if topAmount > s.Expense*0.35 {
		r = appendInfo(r, fmt.Sprintf("TOP EXPENSE: '%s' makes up %.0f%% of all expenses. Look for optimization opportunities there", topCategory, ratio(topAmount, s.Expense)*100))
	}
	return r
}

func appendForecastOutlook(_ domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	if r.Score >= 80 {
		r.Forecast += " Next month outlook: growth should continue."
	} else if r.Score < 40 {
		r.Forecast += " The next 2 weeks are critical! Immediate action required."
	}
	return r
}

// finish applies the engine-wide clamp and guarantees at least one
// recommendation.
func finish(_ domain.FinancialSnapshot, _ time.Month, r domain.AnalysisResult) domain.AnalysisResult {
	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > 100 {
		r.Score = 100
	}
	if len(r.Recommendations) == 0 {
		r = appendInfo(r, "Keep monitoring current performance")
	}
	return r
}
