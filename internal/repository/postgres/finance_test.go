package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hotelops-backend/internal/domain"
)

func TestFinanceRepository_GetTotals(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewFinanceRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WillReturnRows(sqlmock.NewRows([]string{"revenue", "expense"}).AddRow(150000.0, 90000.0))

	revenue, expense, err := repo.GetTotals(context.Background())
	assert.NoError(t, err)
	assert.InDelta(t, 150000, revenue, 0.001)
	assert.InDelta(t, 90000, expense, 0.001)
}

func TestFinanceRepository_GetExpenseBreakdown(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewFinanceRepository(db)

	mock.ExpectQuery("SELECT category, ABS\\(SUM\\(amount\\)\\)").
		WithArgs(domain.CategoryPayment).
		WillReturnRows(sqlmock.NewRows([]string{"category", "total"}).
			AddRow("Energy", 18000.0).
			AddRow("Personnel", 40000.0))

	breakdown, err := repo.GetExpenseBreakdown(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{"Energy": 18000, "Personnel": 40000}, breakdown)
}

func TestFinanceRepository_MonthlyTotals(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewFinanceRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE amount > 0").
		WillReturnRows(sqlmock.NewRows([]string{"current", "last"}).AddRow(50000.0, 40000.0))

	current, last, err := repo.GetMonthlyRevenue(context.Background())
	assert.NoError(t, err)
	assert.InDelta(t, 50000, current, 0.001)
	assert.InDelta(t, 40000, last, 0.001)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE amount < 0").
		WillReturnRows(sqlmock.NewRows([]string{"current", "last"}).AddRow(30000.0, 30000.0))

	current, last, err = repo.GetMonthlyExpense(context.Background())
	assert.NoError(t, err)
	assert.InDelta(t, 30000, current, 0.001)
	assert.InDelta(t, 30000, last, 0.001)
}

func TestAnalysisReportRepository_RoundTrip(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewAnalysisReportRepository(db)
	ctx := context.Background()

	report := &domain.AnalysisReport{
		Kind:        domain.ReportKindRules,
		GeneratedAt: time.Now().UTC(),
		Result: domain.AnalysisResult{
			Score:           82,
			Forecast:        "GOOD",
			Recommendations: []string{"a", "b"},
		},
	}

	mock.ExpectQuery("INSERT INTO analysis_reports").
		WithArgs(string(domain.ReportKindRules), report.GeneratedAt, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	assert.NoError(t, repo.Save(ctx, report))
	assert.Equal(t, int64(5), report.ID)

	payload := `{"score":82,"forecast":"GOOD","recommendations":["a","b"]}`
	mock.ExpectQuery("SELECT (.+) FROM analysis_reports WHERE kind = \\$1").
		WithArgs(string(domain.ReportKindRules)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "generated_at", "result"}).
			AddRow(int64(5), "RULES", report.GeneratedAt, []byte(payload)))

	got, err := repo.GetLatest(ctx, domain.ReportKindRules)
	assert.NoError(t, err)
	assert.Equal(t, 82, got.Result.Score)
	assert.Equal(t, []string{"a", "b"}, got.Result.Recommendations)
}

func TestRoomRepository_GetStats(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewRoomRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM rooms").
		WillReturnRows(sqlmock.NewRows([]string{"total", "available", "occupied", "cleaning", "maintenance"}).
			AddRow(40, 8, 29, 2, 1))

	stats, err := repo.GetStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.RoomStats{Total: 40, Available: 8, Occupied: 29, Cleaning: 2, Maintenance: 1}, stats)
}

func TestStaffRepository_GetStats(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewStaffRepository(db)

	mock.ExpectQuery("SELECT department, COUNT\\(\\*\\) FROM staff").
		WillReturnRows(sqlmock.NewRows([]string{"department", "count"}).
			AddRow("Front Desk", 4).
			AddRow("Housekeeping", 8))

	stats, err := repo.GetStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, "Front Desk: 4, Housekeeping: 8", stats.ByDepartment)
}
