package usecase

import (
	"context"

	"github.com/iho/treasury/internal/domain"
)

// LedgerUseCase exposes read access to the interest ledger.
type LedgerUseCase struct {
	advanceRepo AdvanceRepository
	entryRepo   InterestEntryRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(advanceRepo AdvanceRepository, entryRepo InterestEntryRepository) *LedgerUseCase {
	return &LedgerUseCase{
		advanceRepo: advanceRepo,
		entryRepo:   entryRepo,
	}
}

// ListAdvanceScheduleInput represents input for listing an advance's entries.
type ListAdvanceScheduleInput struct {
	AdvanceID string
	Limit     int
	Offset    int
}

// ListAdvanceSchedule returns the daily interest entries of one advance,
// newest first.
func (uc *LedgerUseCase) ListAdvanceSchedule(ctx context.Context, input ListAdvanceScheduleInput) ([]*domain.InterestEntry, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	// Surface a not-found instead of an empty schedule for unknown IDs.
	if _, err := uc.advanceRepo.GetByID(ctx, input.AdvanceID); err != nil {
		return nil, err
	}

	return uc.entryRepo.ListByInstrument(ctx, domain.KindAdvance, input.AdvanceID, input.Limit, input.Offset)
}
