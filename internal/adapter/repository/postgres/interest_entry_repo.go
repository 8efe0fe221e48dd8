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

const entryColumns = `
	id, kind, instrument_id, entry_date, balance,
	daily_rate, interest, cumulative, created_at
`

// InterestEntryRepository implements usecase.InterestEntryRepository.
type InterestEntryRepository struct {
	pool *pgxpool.Pool
}

// NewInterestEntryRepository creates a new InterestEntryRepository.
func NewInterestEntryRepository(pool *pgxpool.Pool) *InterestEntryRepository {
	return &InterestEntryRepository{pool: pool}
}

// Create inserts an interest entry. An entry already present for the same
// instrument and date maps to domain.ErrDuplicateInterestEntry; the conflict
// is absorbed by the insert itself, so the surrounding transaction stays
// usable and the run can keep going.
func (r *InterestEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.InterestEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO interest_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (kind, instrument_id, entry_date) DO NOTHING
	`

	tag, err := pgxTx.Exec(ctx, query,
		entry.ID,
		entry.Kind,
		entry.InstrumentID,
		timeToPgDate(entry.EntryDate),
		decimalToNumeric(entry.Balance),
		decimalToNumeric(entry.DailyRate),
		decimalToNumeric(entry.Interest),
		decimalToNumeric(entry.Cumulative),
		timeToPgTimestamptz(entry.CreatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateInterestEntry
	}

	return nil
}

// ExistsOn reports whether an entry already exists for the instrument on date.
func (r *InterestEntryRepository) ExistsOn(ctx context.Context, tx usecase.Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (bool, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT EXISTS (
			SELECT 1 FROM interest_entries
			WHERE kind = $1 AND instrument_id = $2 AND entry_date = $3
		)
	`

	var exists bool
	err := pgxTx.QueryRow(ctx, query, kind, instrumentID, timeToPgDate(date)).Scan(&exists)

	return exists, err
}

// LatestBefore retrieves the most recent entry strictly before date, or nil
// when the instrument has no prior entry.
func (r *InterestEntryRepository) LatestBefore(ctx context.Context, tx usecase.Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (*domain.InterestEntry, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT ` + entryColumns + `
		FROM interest_entries
		WHERE kind = $1 AND instrument_id = $2 AND entry_date < $3
		ORDER BY entry_date DESC
		LIMIT 1
	`

	entry, err := scanEntry(pgxTx.QueryRow(ctx, query, kind, instrumentID, timeToPgDate(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return entry, nil
}

// ListByInstrument retrieves the entries of one instrument, newest first.
func (r *InterestEntryRepository) ListByInstrument(ctx context.Context, kind domain.InstrumentKind, instrumentID string, limit, offset int) ([]*domain.InterestEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM interest_entries
		WHERE kind = $1 AND instrument_id = $2
		ORDER BY entry_date DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, kind, instrumentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.InterestEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SumInterest totals the interest booked for the instruments in the period.
func (r *InterestEntryRepository) SumInterest(ctx context.Context, kind domain.InstrumentKind, instrumentIDs []string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(interest), 0)
		FROM interest_entries
		WHERE kind = $1 AND instrument_id = ANY($2) AND entry_date BETWEEN $3 AND $4
	`

	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx, query, kind, instrumentIDs, timeToPgDate(from), timeToPgDate(to)).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

func scanEntry(row pgx.Row) (*domain.InterestEntry, error) {
	var (
		entry                               domain.InterestEntry
		balance, rate, interest, cumulative pgtype.Numeric
	)

	err := row.Scan(
		&entry.ID,
		&entry.Kind,
		&entry.InstrumentID,
		&entry.EntryDate,
		&balance,
		&rate,
		&interest,
		&cumulative,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Balance = numericToDecimal(balance)
	entry.DailyRate = numericToDecimal(rate)
	entry.Interest = numericToDecimal(interest)
	entry.Cumulative = numericToDecimal(cumulative)

	return &entry, nil
}
