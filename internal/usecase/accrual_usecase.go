package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
)

// AccrualUseCase computes one day of interest for every eligible advance and
// loan, idempotently per (instrument, date). A run is a single transaction:
// it either fully commits or fully rolls back.
type AccrualUseCase struct {
	txManager   TransactionManager
	advanceRepo AdvanceRepository
	loanRepo    LoanRepository
	entryRepo   InterestEntryRepository
	idGen       IDGenerator
	clock       Clock
	logger      zerolog.Logger

	runLock  RunLocker       // optional, serializes same-date runs
	retrier  Retrier         // optional, retries transient store failures
	observer AccrualObserver // optional, metrics hook
}

// NewAccrualUseCase creates a new AccrualUseCase.
func NewAccrualUseCase(
	txManager TransactionManager,
	advanceRepo AdvanceRepository,
	loanRepo LoanRepository,
	entryRepo InterestEntryRepository,
	idGen IDGenerator,
	clock Clock,
	logger zerolog.Logger,
) *AccrualUseCase {
	return &AccrualUseCase{
		txManager:   txManager,
		advanceRepo: advanceRepo,
		loanRepo:    loanRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		clock:       clock,
		logger:      logger,
	}
}

// WithRunLock serializes concurrent runs for the same (kind, date).
func (uc *AccrualUseCase) WithRunLock(lock RunLocker) *AccrualUseCase {
	uc.runLock = lock
	return uc
}

// WithRetrier retries a whole run on retryable store errors.
func (uc *AccrualUseCase) WithRetrier(retrier Retrier) *AccrualUseCase {
	uc.retrier = retrier
	return uc
}

// WithObserver attaches a metrics observer.
func (uc *AccrualUseCase) WithObserver(observer AccrualObserver) *AccrualUseCase {
	uc.observer = observer
	return uc
}

// AccrueInput represents input for an accrual run.
type AccrueInput struct {
	// Date is the calculation date; nil means the clock's today.
	Date *time.Time
}

// AccrualRunResult summarizes one accrual run.
type AccrualRunResult struct {
	Kind          domain.InstrumentKind
	Date          time.Time
	Processed     int
	TotalInterest decimal.Decimal
}

// AccrueAdvances runs the daily interest computation over active advances.
func (uc *AccrualUseCase) AccrueAdvances(ctx context.Context, input AccrueInput) (*AccrualRunResult, error) {
	return uc.accrue(ctx, domain.KindAdvance, uc.resolveDate(input.Date))
}

// AccrueLoans runs the daily interest computation over active loans within
// their term.
func (uc *AccrualUseCase) AccrueLoans(ctx context.Context, input AccrueInput) (*AccrualRunResult, error) {
	return uc.accrue(ctx, domain.KindLoan, uc.resolveDate(input.Date))
}

func (uc *AccrualUseCase) resolveDate(d *time.Time) time.Time {
	if d != nil {
		return domain.Day(*d)
	}
	return domain.Day(uc.clock.Now())
}

func (uc *AccrualUseCase) accrue(ctx context.Context, kind domain.InstrumentKind, date time.Time) (*AccrualRunResult, error) {
	if uc.runLock != nil {
		key := runLockKey(kind, date)

		acquired, err := uc.runLock.Acquire(ctx, key, runLockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire run lock: %w", err)
		}
		if !acquired {
			return nil, domain.ErrRunInProgress
		}
		defer uc.runLock.Release(ctx, key)
	}

	var result *AccrualRunResult

	run := func() error {
		var err error
		result, err = uc.runOnce(ctx, kind, date)
		return err
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, run)
	} else {
		err = run()
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("kind", string(kind)).
		Str("date", date.Format(domain.DateLayout)).
		Int("processed", result.Processed).
		Str("total_interest", result.TotalInterest.String()).
		Msg("accrual run completed")

	if uc.observer != nil {
		uc.observer.RunCompleted(kind, result.Processed, result.TotalInterest)
	}

	return result, nil
}

// runOnce executes a single transactional accrual pass. Re-running for the
// same date is safe: instruments with an existing entry are skipped.
func (uc *AccrualUseCase) runOnce(ctx context.Context, kind domain.InstrumentKind, date time.Time) (*AccrualRunResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	instruments, err := uc.listAccruable(ctx, tx, kind, date)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	processed := 0
	total := decimal.Zero

	for _, inst := range instruments {
		// Corrupt instrument data aborts the whole run.
		if err := inst.Validate(); err != nil {
			return nil, fmt.Errorf("%s %s: %w", kind, inst.InstrumentID(), err)
		}

		exists, err := uc.entryRepo.ExistsOn(ctx, tx, kind, inst.InstrumentID(), date)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		prior, err := uc.entryRepo.LatestBefore(ctx, tx, kind, inst.InstrumentID(), date)
		if err != nil {
			return nil, err
		}

		if domain.HasGapBefore(date, prior) {
			// Interest for the skipped days was never captured and will
			// not be added retroactively; the chain continues off the
			// latest existing entry.
			uc.logger.Warn().
				Str("kind", string(kind)).
				Str("instrument_id", inst.InstrumentID()).
				Str("date", date.Format(domain.DateLayout)).
				Str("last_entry_date", prior.EntryDate.Format(domain.DateLayout)).
				Msg("gap in accrual schedule")

			if uc.observer != nil {
				uc.observer.GapDetected(kind)
			}
		}

		entry := domain.Chain(inst, date, prior)
		entry.ID = uc.idGen.Generate()
		entry.CreatedAt = now

		err = uc.entryRepo.Create(ctx, tx, entry)
		if errors.Is(err, domain.ErrDuplicateInterestEntry) {
			// A concurrent run already wrote this date.
			continue
		}
		if err != nil {
			return nil, err
		}

		err = uc.updateRunningTotal(ctx, tx, kind, inst.InstrumentID(), entry, now)
		if err != nil {
			return nil, err
		}

		processed++
		total = total.Add(entry.Interest)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &AccrualRunResult{
		Kind:          kind,
		Date:          date,
		Processed:     processed,
		TotalInterest: total,
	}, nil
}

func (uc *AccrualUseCase) listAccruable(ctx context.Context, tx Transaction, kind domain.InstrumentKind, date time.Time) ([]domain.Instrument, error) {
	switch kind {
	case domain.KindAdvance:
		advances, err := uc.advanceRepo.ListAccruable(ctx, tx, date)
		if err != nil {
			return nil, err
		}

		instruments := make([]domain.Instrument, 0, len(advances))
		for _, a := range advances {
			if a.AccruesOn(date) {
				instruments = append(instruments, a)
			}
		}

		return instruments, nil
	case domain.KindLoan:
		loans, err := uc.loanRepo.ListAccruable(ctx, tx, date)
		if err != nil {
			return nil, err
		}

		instruments := make([]domain.Instrument, 0, len(loans))
		for _, l := range loans {
			if l.AccruesOn(date) {
				instruments = append(instruments, l)
			}
		}

		return instruments, nil
	default:
		return nil, fmt.Errorf("unknown instrument kind %q", kind)
	}
}

func (uc *AccrualUseCase) updateRunningTotal(ctx context.Context, tx Transaction, kind domain.InstrumentKind, id string, entry *domain.InterestEntry, now time.Time) error {
	switch kind {
	case domain.KindAdvance:
		return uc.advanceRepo.UpdateAccrual(ctx, tx, id, entry.Cumulative, entry.EntryDate, now)
	case domain.KindLoan:
		return uc.loanRepo.UpdateAccrual(ctx, tx, id, entry.Cumulative, now)
	default:
		return fmt.Errorf("unknown instrument kind %q", kind)
	}
}

func runLockKey(kind domain.InstrumentKind, date time.Time) string {
	return fmt.Sprintf("accrual:%s:%s", kind, date.Format(domain.DateLayout))
}
