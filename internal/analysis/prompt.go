package analysis

import (
	"fmt"
	"sort"
	"strings"

	"hotelops-backend/internal/domain"
)

// BuildPrompt renders the comprehensive snapshot into the analysis prompt sent
// to the generative service. Every snapshot section is embedded, followed by a
// fixed instruction block requesting a JSON object in the AnalysisResult
// schema with exactly 7 weekly forecast entries.
func BuildPrompt(data domain.ComprehensiveSnapshot) string {
	fin := data.Financial
	var b strings.Builder

	b.WriteString("You are a hotel management consultant. Analyze the COMPLETE hotel data below and give strategic advice.\n\n")

	b.WriteString("=== 1. FINANCIAL POSITION ===\n")
	fmt.Fprintf(&b, "Total revenue: %.0f\n", fin.Revenue)
	fmt.Fprintf(&b, "Total expense: %.0f\n", fin.Expense)
	fmt.Fprintf(&b, "Net profit: %.0f\n", fin.NetProfit())
	fmt.Fprintf(&b, "Profit margin: %.1f%%\n", fin.ProfitMargin())
	fmt.Fprintf(&b, "Revenue change: %.1f%%\n", fin.RevenueChangePct)
	fmt.Fprintf(&b, "Expense change: %.1f%%\n", fin.ExpenseChangePct)
	if len(fin.ExpenseBreakdown) > 0 {
		b.WriteString("\nExpenses by category:\n")
		categories := make([]string, 0, len(fin.ExpenseBreakdown))
		for c := range fin.ExpenseBreakdown {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			amount := fin.ExpenseBreakdown[c]
			pct := 0.0
			if fin.Expense > 0 {
				pct = amount / fin.Expense * 100
			}
			fmt.Fprintf(&b, "  - %s: %.0f (%.1f%%)\n", c, amount, pct)
		}
	}

	b.WriteString("\n=== 2. ROOM MANAGEMENT ===\n")
	fmt.Fprintf(&b, "Overall occupancy: %.0f%%\n", fin.OccupancyRate)
	fmt.Fprintf(&b, "Total rooms: %d\n", data.TotalRooms)
	fmt.Fprintf(&b, "Occupied rooms: %d\n", data.OccupiedRooms)
	fmt.Fprintf(&b, "Available rooms: %d\n", data.AvailableRooms)
	fmt.Fprintf(&b, "Awaiting cleaning: %d\n", data.CleaningRooms)
	fmt.Fprintf(&b, "Under maintenance: %d\n", data.MaintenanceRooms)

	b.WriteString("\n=== 3. RESERVATION ANALYTICS ===\n")
	fmt.Fprintf(&b, "Active reservations: %d\n", data.ActiveReservations)
	fmt.Fprintf(&b, "Pending reservations: %d\n", data.PendingReservations)
	fmt.Fprintf(&b, "Completed reservations: %d\n", data.CompletedReservations)
	fmt.Fprintf(&b, "Cancelled reservations: %d\n", data.CancelledReservations)
	if data.CancelledReservations > 0 && data.ActiveReservations > 0 {
		cancelRate := float64(data.CancelledReservations) / float64(data.ActiveReservations+data.CancelledReservations) * 100
		fmt.Fprintf(&b, "Cancellation rate: %.1f%%\n", cancelRate)
	}

	b.WriteString("\n=== 4. CUSTOMER BASE ===\n")
	fmt.Fprintf(&b, "Total customers: %d\n", data.TotalCustomers)
	fmt.Fprintf(&b, "Customers currently staying: %d\n", data.ActiveCustomers)
	if data.TotalCustomers > 0 && data.ActiveReservations > data.TotalCustomers {
		repeatRate := float64(data.ActiveReservations-data.TotalCustomers) / float64(data.ActiveReservations) * 100
		fmt.Fprintf(&b, "Estimated repeat-guest rate: %.1f%%\n", repeatRate)
	}

	b.WriteString("\n=== 5. STAFF ===\n")
	fmt.Fprintf(&b, "Total staff: %d\n", data.TotalStaff)
	fmt.Fprintf(&b, "By department: %s\n", data.StaffByDepartment)

	b.WriteString("\n=== TASK ===\n")
	b.WriteString("Considering ALL data above:\n")
	b.WriteString("1. Give a hotel performance score (0-100)\n")
	b.WriteString("2. Give a short situation assessment\n")
	b.WriteString("3. Give 5 strategic recommendations (financial, operational, marketing)\n")
	b.WriteString("4. Forecast DAILY revenue and occupancy for the next 7 DAYS\n")
	b.WriteString("5. Give budget optimization suggestions\n")
	b.WriteString("6. Break revenue down by category in percentages (Rooms, Food & Beverage, Extra Services, Other)\n")
	b.WriteString("\nANSWER IN JSON FORMAT ONLY:\n")
	b.WriteString(promptSchema)

	return b.String()
}

const promptSchema = `{
  "score": 75,
  "forecast": "Situation assessment",
  "recommendations": [
    "Recommendation 1",
    "Recommendation 2",
    "Recommendation 3",
    "Recommendation 4",
    "Recommendation 5"
  ],
  "weeklyForecast": [
    { "day": "Monday", "revenue": 15000, "occupancy": 75 },
    { "day": "Tuesday", "revenue": 16000, "occupancy": 78 },
    { "day": "Wednesday", "revenue": 14500, "occupancy": 72 },
    { "day": "Thursday", "revenue": 17000, "occupancy": 80 },
    { "day": "Friday", "revenue": 20000, "occupancy": 88 },
    { "day": "Saturday", "revenue": 22000, "occupancy": 92 },
    { "day": "Sunday", "revenue": 18000, "occupancy": 82 }
  ],
  "revenueDistribution": [
    { "category": "Rooms", "percentage": 65 },
    { "category": "Food & Beverage", "percentage": 20 },
    { "category": "Extra Services", "percentage": 10 },
    { "category": "Other", "percentage": 5 }
  ],
  "budgetInsights": [
    { "category": "Energy", "current": 25000, "suggested": 20000, "savingTip": "Tip" },
    { "category": "Personnel", "current": 40000, "suggested": 38000, "savingTip": "Tip" }
  ]
}`
