package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// BalanceRepository implements usecase.BalanceRepository.
type BalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

// TotalClosingBalance sums the closing balances of active accounts on date.
// Accounts with no balance row for the date contribute nothing.
func (r *BalanceRepository) TotalClosingBalance(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(b.closing_balance), 0)
		FROM account_daily_balances b
		JOIN bank_accounts a ON a.id = b.account_id
		WHERE a.active AND b.balance_date = $1
	`

	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx, query, timeToPgDate(date)).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}
