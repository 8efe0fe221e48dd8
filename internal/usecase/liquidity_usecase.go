package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
)

// LiquidityStatus classifies the projected net cash position.
type LiquidityStatus string

const (
	StatusBorrowingRequired LiquidityStatus = "borrowing_required"
	StatusSurplusAvailable  LiquidityStatus = "surplus_available"
	StatusBalanced          LiquidityStatus = "balanced"
)

// LiquidityUseCase projects short-horizon cash needs: approved, unpaid
// disbursements due within the horizon against today's account balances.
// Pure read, no side effects.
type LiquidityUseCase struct {
	requestRepo FundRequestRepository
	balanceRepo BalanceRepository
	clock       Clock
	logger      zerolog.Logger
}

// NewLiquidityUseCase creates a new LiquidityUseCase.
func NewLiquidityUseCase(requestRepo FundRequestRepository, balanceRepo BalanceRepository, clock Clock, logger zerolog.Logger) *LiquidityUseCase {
	return &LiquidityUseCase{
		requestRepo: requestRepo,
		balanceRepo: balanceRepo,
		clock:       clock,
		logger:      logger,
	}
}

// LiquidityInput represents input for a liquidity projection.
type LiquidityInput struct {
	// HorizonDays is the projection window; nil means the default horizon.
	HorizonDays *int
}

// DailyDisbursement aggregates the approved needs of one calendar date.
type DailyDisbursement struct {
	Date     time.Time
	Total    decimal.Decimal
	Requests []*domain.DayNeed
}

// LiquidityReport is the structured projection result.
type LiquidityReport struct {
	WindowStart time.Time
	WindowEnd   time.Time
	HorizonDays int

	TotalBalance       decimal.Decimal
	TotalDisbursements decimal.Decimal
	ByDay              []*DailyDisbursement

	// NetNeed is the absolute shortfall or surplus; Status says which.
	NetNeed decimal.Decimal
	Status  LiquidityStatus
}

// LiquidityNeeds computes the cash-needs projection over the horizon.
func (uc *LiquidityUseCase) LiquidityNeeds(ctx context.Context, input LiquidityInput) (*LiquidityReport, error) {
	horizon := DefaultLiquidityHorizonDays
	if input.HorizonDays != nil {
		horizon = *input.HorizonDays
	}
	if horizon < 0 {
		return nil, domain.ErrInvalidHorizon
	}

	today := domain.Day(uc.clock.Now())
	windowEnd := today.AddDate(0, 0, horizon)

	needs, err := uc.requestRepo.ListApprovedNeeds(ctx, today, windowEnd)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]*DailyDisbursement)
	total := decimal.Zero

	for _, need := range needs {
		// A malformed reference is flagged but its amount still counts;
		// the projection must not understate needs.
		if err := domain.ValidateRequestReference(need.RequestReference); err != nil {
			uc.logger.Warn().
				Str("reference", need.RequestReference).
				Str("date", need.Date.Format(domain.DateLayout)).
				Msg("fund request reference does not match the expected format")
		}

		day := domain.Day(need.Date)

		bucket, ok := byDate[day]
		if !ok {
			bucket = &DailyDisbursement{Date: day, Total: decimal.Zero}
			byDate[day] = bucket
		}

		bucket.Total = bucket.Total.Add(need.Amount)
		bucket.Requests = append(bucket.Requests, need)
		total = total.Add(need.Amount)
	}

	byDay := make([]*DailyDisbursement, 0, len(byDate))
	for _, bucket := range byDate {
		byDay = append(byDay, bucket)
	}
	sort.Slice(byDay, func(i, j int) bool { return byDay[i].Date.Before(byDay[j].Date) })

	balance, err := uc.balanceRepo.TotalClosingBalance(ctx, today)
	if err != nil {
		return nil, err
	}

	net := total.Sub(balance)

	status := StatusBalanced
	switch {
	case net.IsPositive():
		status = StatusBorrowingRequired
	case net.IsNegative():
		status = StatusSurplusAvailable
	}

	return &LiquidityReport{
		WindowStart:        today,
		WindowEnd:          windowEnd,
		HorizonDays:        horizon,
		TotalBalance:       balance,
		TotalDisbursements: total,
		ByDay:              byDay,
		NetNeed:            net.Abs(),
		Status:             status,
	}, nil
}
