package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/treasury/internal/domain"
	"github.com/iho/treasury/internal/usecase"
)

// AccrualRunner is the accrual surface the scheduler drives.
type AccrualRunner interface {
	AccrueAdvances(ctx context.Context, input usecase.AccrueInput) (*usecase.AccrualRunResult, error)
	AccrueLoans(ctx context.Context, input usecase.AccrueInput) (*usecase.AccrualRunResult, error)
}

// Scheduler triggers the daily accrual runs on a fixed interval. The accrual
// engine is idempotent per date, so firing more than once a day is harmless.
type Scheduler struct {
	runner   AccrualRunner
	interval time.Duration
	logger   zerolog.Logger

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// New creates a new Scheduler.
func New(runner AccrualRunner, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start begins the scheduler. The first run fires immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticker = time.NewTicker(s.interval)
	s.wg.Add(1)

	go s.run()

	s.logger.Info().Dur("interval", s.interval).Msg("accrual scheduler started")
}

// Stop stops the scheduler and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stop)
		s.wg.Wait()
		s.logger.Info().Msg("accrual scheduler stopped")
	}
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.RunOnce(context.Background())

	for {
		select {
		case <-s.ticker.C:
			s.RunOnce(context.Background())
		case <-s.stop:
			return
		}
	}
}

// RunOnce triggers both accrual runs for today.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.runOne(ctx, domain.KindAdvance, s.runner.AccrueAdvances)
	s.runOne(ctx, domain.KindLoan, s.runner.AccrueLoans)
}

func (s *Scheduler) runOne(ctx context.Context, kind domain.InstrumentKind, accrue func(context.Context, usecase.AccrueInput) (*usecase.AccrualRunResult, error)) {
	result, err := accrue(ctx, usecase.AccrueInput{})
	if err != nil {
		// Another instance holding the lock is not a failure.
		if errors.Is(err, domain.ErrRunInProgress) {
			s.logger.Debug().Str("kind", string(kind)).Msg("accrual run already in progress, skipping")
			return
		}

		s.logger.Error().Err(err).Str("kind", string(kind)).Msg("scheduled accrual run failed")

		return
	}

	if result.Processed > 0 {
		s.logger.Info().
			Str("kind", string(kind)).
			Int("processed", result.Processed).
			Str("total_interest", result.TotalInterest.String()).
			Msg("scheduled accrual run completed")
	}
}
