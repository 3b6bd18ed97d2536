package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelops-backend/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	snap := domain.ComprehensiveSnapshot{
		Financial: domain.FinancialSnapshot{
			Revenue:          150000,
			Expense:          90000,
			OccupancyRate:    72,
			RevenueChangePct: 8.5,
			ExpenseBreakdown: map[string]float64{
				"Personnel": 40000,
				"Energy":    18000,
			},
		},
		TotalRooms:            40,
		OccupiedRooms:         29,
		ActiveReservations:    25,
		CancelledReservations: 5,
		TotalCustomers:        18,
		TotalStaff:            12,
		StaffByDepartment:     "Front Desk: 4, Housekeeping: 8",
	}

	prompt := BuildPrompt(snap)

	assert.Contains(t, prompt, "Total revenue: 150000")
	assert.Contains(t, prompt, "Profit margin: 40.0%")
	assert.Contains(t, prompt, "Overall occupancy: 72%")
	assert.Contains(t, prompt, "Cancellation rate: 16.7%")
	assert.Contains(t, prompt, "By department: Front Desk: 4, Housekeeping: 8")
	assert.Contains(t, prompt, "ANSWER IN JSON FORMAT ONLY:")
	assert.Contains(t, prompt, `"weeklyForecast"`)

	// Categories render sorted so the prompt is reproducible.
	assert.Less(t, strings.Index(prompt, "Energy: 18000"), strings.Index(prompt, "Personnel: 40000"))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	snap := domain.ComprehensiveSnapshot{
		Financial: domain.FinancialSnapshot{
			Revenue: 100000,
			Expense: 50000,
			ExpenseBreakdown: map[string]float64{
				"A": 1, "B": 2, "C": 3, "D": 4, "E": 5,
			},
		},
	}
	first := BuildPrompt(snap)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildPrompt(snap))
	}
}
