package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
	"github.com/iho/treasury/internal/usecase"
)

const advanceColumns = `
	id, reference, css_id, principal, annual_rate,
	start_date, planned_end_date, actual_end_date, status,
	accrued_interest, last_accrual_date, created_at, updated_at
`

// AdvanceRepository implements usecase.AdvanceRepository.
type AdvanceRepository struct {
	pool *pgxpool.Pool
}

// NewAdvanceRepository creates a new AdvanceRepository.
func NewAdvanceRepository(pool *pgxpool.Pool) *AdvanceRepository {
	return &AdvanceRepository{pool: pool}
}

// GetByID retrieves an advance by ID.
func (r *AdvanceRepository) GetByID(ctx context.Context, id string) (*domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE id = $1`

	advance, err := scanAdvance(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdvanceNotFound
		}

		return nil, err
	}

	return advance, nil
}

// ListAccruable retrieves the advances eligible for accrual on date, locked
// for the duration of the transaction.
func (r *AdvanceRepository) ListAccruable(ctx context.Context, tx usecase.Transaction, date time.Time) ([]*domain.Advance, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE status = $1 AND start_date <= $2
		ORDER BY reference
		FOR UPDATE
	`

	rows, err := pgxTx.Query(ctx, query, domain.InstrumentActive, timeToPgDate(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAdvances(rows)
}

// ListForCSSInPeriod retrieves the advances of one CSS alive at any point in
// the period.
func (r *AdvanceRepository) ListForCSSInPeriod(ctx context.Context, cssID string, periodStart, periodEnd time.Time) ([]*domain.Advance, error) {
	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE css_id = $1
		  AND start_date <= $2
		  AND (actual_end_date IS NULL AND status = $3 OR actual_end_date >= $4)
		ORDER BY reference
	`

	rows, err := r.pool.Query(ctx, query,
		cssID,
		timeToPgDate(periodEnd),
		domain.InstrumentActive,
		timeToPgDate(periodStart),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAdvances(rows)
}

// UpdateAccrual updates the accrued-interest running total of an advance.
func (r *AdvanceRepository) UpdateAccrual(ctx context.Context, tx usecase.Transaction, id string, accrued decimal.Decimal, lastAccrual, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE advances
		SET accrued_interest = $2, last_accrual_date = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := pgxTx.Exec(ctx, query,
		id,
		decimalToNumeric(accrued),
		timeToPgDate(lastAccrual),
		timeToPgTimestamptz(updatedAt),
	)

	return err
}

func scanAdvance(row pgx.Row) (*domain.Advance, error) {
	var (
		advance                         domain.Advance
		principal, rate, accrued        pgtype.Numeric
		plannedEnd, actualEnd, lastAccr pgtype.Date
	)

	err := row.Scan(
		&advance.ID,
		&advance.Reference,
		&advance.CSSID,
		&principal,
		&rate,
		&advance.StartDate,
		&plannedEnd,
		&actualEnd,
		&advance.Status,
		&accrued,
		&lastAccr,
		&advance.CreatedAt,
		&advance.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	advance.Principal = numericToDecimal(principal)
	advance.AnnualRate = numericToDecimal(rate)
	advance.AccruedInterest = numericToDecimal(accrued)
	advance.PlannedEndDate = pgDateToTimePtr(plannedEnd)
	advance.ActualEndDate = pgDateToTimePtr(actualEnd)
	advance.LastAccrualDate = pgDateToTimePtr(lastAccr)

	return &advance, nil
}

func collectAdvances(rows pgx.Rows) ([]*domain.Advance, error) {
	var advances []*domain.Advance
	for rows.Next() {
		advance, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, advance)
	}

	return advances, rows.Err()
}
