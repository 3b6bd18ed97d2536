package postgres

import (
	"context"
	"database/sql"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type financeRepository struct {
	db *sql.DB
}

func NewFinanceRepository(db *sql.DB) repository.FinanceRepository {
	return &financeRepository{db: db}
}

// GetTotals aggregates the full transaction log. Expense amounts are stored
// negative and returned as a positive magnitude.
func (r *financeRepository) GetTotals(ctx context.Context) (revenue, expense float64, err error) {
	query := `SELECT
	            COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0),
	            COALESCE(ABS(SUM(amount) FILTER (WHERE amount < 0)), 0)
	          FROM transactions`
	err = r.db.QueryRowContext(ctx, query).Scan(&revenue, &expense)
	return revenue, expense, err
}

func (r *financeRepository) GetExpenseBreakdown(ctx context.Context) (map[string]float64, error) {
	query := `SELECT category, ABS(SUM(amount))
	          FROM transactions
	          WHERE amount < 0 AND category <> $1
	          GROUP BY category`
	rows, err := r.db.QueryContext(ctx, query, domain.CategoryPayment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breakdown := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		breakdown[category] = total
	}
	return breakdown, rows.Err()
}

func (r *financeRepository) GetMonthlyRevenue(ctx context.Context) (current, last float64, err error) {
	return r.monthlyTotals(ctx, `amount > 0`)
}

func (r *financeRepository) GetMonthlyExpense(ctx context.Context) (current, last float64, err error) {
	return r.monthlyTotals(ctx, `amount < 0`)
}

func (r *financeRepository) monthlyTotals(ctx context.Context, sign string) (current, last float64, err error) {
	query := `SELECT
	            COALESCE(ABS(SUM(amount) FILTER (
	              WHERE date_trunc('month', date) = date_trunc('month', CURRENT_DATE))), 0),
	            COALESCE(ABS(SUM(amount) FILTER (
	              WHERE date_trunc('month', date) = date_trunc('month', CURRENT_DATE - INTERVAL '1 month'))), 0)
	          FROM transactions WHERE ` + sign
	err = r.db.QueryRowContext(ctx, query).Scan(&current, &last)
	return current, last, err
}
