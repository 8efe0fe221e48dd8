package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
)

// CSSRepository defines data access for fund offices.
type CSSRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CSS, error)
}

// AdvanceRepository defines data access for advances.
type AdvanceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Advance, error)
	// ListAccruable returns active advances with start date on or before date.
	ListAccruable(ctx context.Context, tx Transaction, date time.Time) ([]*domain.Advance, error)
	// ListForCSSInPeriod returns advances of a CSS that were live at some
	// point during [periodStart, periodEnd].
	ListForCSSInPeriod(ctx context.Context, cssID string, periodStart, periodEnd time.Time) ([]*domain.Advance, error)
	UpdateAccrual(ctx context.Context, tx Transaction, id string, accrued decimal.Decimal, lastAccrual, updatedAt time.Time) error
}

// LoanRepository defines data access for bank loans.
type LoanRepository interface {
	// ListAccruable returns active loans with start <= date <= maturity.
	ListAccruable(ctx context.Context, tx Transaction, date time.Time) ([]*domain.Loan, error)
	// ListOverlapping returns active loans whose term intersects the period.
	ListOverlapping(ctx context.Context, periodStart, periodEnd time.Time) ([]*domain.Loan, error)
	UpdateAccrual(ctx context.Context, tx Transaction, id string, accrued decimal.Decimal, updatedAt time.Time) error
}

// InterestEntryRepository defines data access for the daily interest ledger.
// Entries are append-only; Create must return domain.ErrDuplicateInterestEntry
// when an entry for (kind, instrument, date) already exists.
type InterestEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.InterestEntry) error
	ExistsOn(ctx context.Context, tx Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (bool, error)
	// LatestBefore returns the entry with the latest date strictly before
	// date, or nil when the instrument has no prior entries.
	LatestBefore(ctx context.Context, tx Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (*domain.InterestEntry, error)
	ListByInstrument(ctx context.Context, kind domain.InstrumentKind, instrumentID string, limit, offset int) ([]*domain.InterestEntry, error)
	// SumInterest totals per-day interest over the instruments' entries in
	// [from, to] inclusive.
	SumInterest(ctx context.Context, kind domain.InstrumentKind, instrumentIDs []string, from, to time.Time) (decimal.Decimal, error)
}

// FundRequestRepository defines read access to the fund-request aggregates
// maintained by the external request workflow.
type FundRequestRepository interface {
	// ListApprovedNeeds returns the day-level needs of approved requests
	// falling in [from, to] inclusive, ordered by date.
	ListApprovedNeeds(ctx context.Context, from, to time.Time) ([]*domain.DayNeed, error)
}

// BalanceRepository defines read access to account daily balances.
type BalanceRepository interface {
	// TotalClosingBalance sums closing balances of active accounts on date.
	TotalClosingBalance(ctx context.Context, date time.Time) (decimal.Decimal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time. Every operation takes its "today" from a
// Clock so date-boundary behavior is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RunLocker serializes concurrent accrual runs for the same date.
type RunLocker interface {
	// Acquire returns false when the lock is already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// AccrualObserver receives accrual engine observations (metrics hook).
type AccrualObserver interface {
	RunCompleted(kind domain.InstrumentKind, processed int, totalInterest decimal.Decimal)
	GapDetected(kind domain.InstrumentKind)
}
