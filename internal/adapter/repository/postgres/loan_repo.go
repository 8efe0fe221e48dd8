package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
	"github.com/iho/treasury/internal/usecase"
)

const loanColumns = `
	id, reference, lender, principal, annual_rate,
	start_date, maturity_date, status, accrued_interest,
	created_at, updated_at
`

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

// ListAccruable retrieves the loans eligible for accrual on date, locked for
// the duration of the transaction. A loan past maturity never accrues.
func (r *LoanRepository) ListAccruable(ctx context.Context, tx usecase.Transaction, date time.Time) ([]*domain.Loan, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE status = $1 AND start_date <= $2 AND maturity_date >= $2
		ORDER BY reference
		FOR UPDATE
	`

	rows, err := pgxTx.Query(ctx, query, domain.InstrumentActive, timeToPgDate(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoans(rows)
}

// ListOverlapping retrieves the active loans whose life overlaps the period.
func (r *LoanRepository) ListOverlapping(ctx context.Context, periodStart, periodEnd time.Time) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE status = $1 AND start_date <= $2 AND maturity_date >= $3
		ORDER BY reference
	`

	rows, err := r.pool.Query(ctx, query,
		domain.InstrumentActive,
		timeToPgDate(periodEnd),
		timeToPgDate(periodStart),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoans(rows)
}

// UpdateAccrual updates the accrued-interest running total of a loan.
func (r *LoanRepository) UpdateAccrual(ctx context.Context, tx usecase.Transaction, id string, accrued decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE loans
		SET accrued_interest = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(accrued), timeToPgTimestamptz(updatedAt))

	return err
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var (
		loan                     domain.Loan
		principal, rate, accrued pgtype.Numeric
	)

	err := row.Scan(
		&loan.ID,
		&loan.Reference,
		&loan.Lender,
		&principal,
		&rate,
		&loan.StartDate,
		&loan.MaturityDate,
		&loan.Status,
		&accrued,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	loan.Principal = numericToDecimal(principal)
	loan.AnnualRate = numericToDecimal(rate)
	loan.AccruedInterest = numericToDecimal(accrued)

	return &loan, nil
}

func collectLoans(rows pgx.Rows) ([]*domain.Loan, error) {
	var loans []*domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, rows.Err()
}
