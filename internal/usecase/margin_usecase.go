package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
)

// MarginUseCase derives the net margin a CSS generates over a period:
// interest revenue on its advances minus an estimated funding cost. Pure
// read, no side effects.
type MarginUseCase struct {
	cssRepo     CSSRepository
	advanceRepo AdvanceRepository
	loanRepo    LoanRepository
	entryRepo   InterestEntryRepository
	clock       Clock
}

// NewMarginUseCase creates a new MarginUseCase.
func NewMarginUseCase(
	cssRepo CSSRepository,
	advanceRepo AdvanceRepository,
	loanRepo LoanRepository,
	entryRepo InterestEntryRepository,
	clock Clock,
) *MarginUseCase {
	return &MarginUseCase{
		cssRepo:     cssRepo,
		advanceRepo: advanceRepo,
		loanRepo:    loanRepo,
		entryRepo:   entryRepo,
		clock:       clock,
	}
}

// MarginInput represents input for a margin report.
type MarginInput struct {
	CSSID       string
	PeriodStart *time.Time // nil means period end minus 30 days
	PeriodEnd   *time.Time // nil means today
}

// MarginReport is the structured margin result for one CSS.
type MarginReport struct {
	CSSCode     string
	CSSName     string
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodDays  int

	// Revenue
	InterestRevenue decimal.Decimal

	// Cost estimate. No direct advance-to-loan funding link exists, so the
	// cost is approximated from the mean active loan rate applied to the
	// mean advance principal over the period.
	EstimatedFundingCost decimal.Decimal
	AverageLoanRate      decimal.Decimal

	// Margin
	NetMargin  decimal.Decimal
	MarginRate decimal.Decimal // percentage of revenue; 0 when revenue is 0
}

// MarginForCSS computes the margin report for one CSS over a period.
func (uc *MarginUseCase) MarginForCSS(ctx context.Context, input MarginInput) (*MarginReport, error) {
	end := domain.Day(uc.clock.Now())
	if input.PeriodEnd != nil {
		end = domain.Day(*input.PeriodEnd)
	}

	start := end.AddDate(0, 0, -DefaultMarginWindowDays)
	if input.PeriodStart != nil {
		start = domain.Day(*input.PeriodStart)
	}

	if start.After(end) {
		return nil, domain.ErrInvalidPeriod
	}

	css, err := uc.cssRepo.GetByID(ctx, input.CSSID)
	if err != nil {
		return nil, err
	}

	advances, err := uc.advanceRepo.ListForCSSInPeriod(ctx, css.ID, start, end)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	if len(advances) > 0 {
		ids := make([]string, len(advances))
		for i, a := range advances {
			ids[i] = a.ID
		}

		revenue, err = uc.entryRepo.SumInterest(ctx, domain.KindAdvance, ids, start, end)
		if err != nil {
			return nil, err
		}
	}

	loans, err := uc.loanRepo.ListOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}

	avgLoanRate := meanLoanRate(loans)
	avgPrincipal := meanPrincipal(advances)
	days := domain.DaysBetween(start, end)

	cost := avgPrincipal.
		Mul(avgLoanRate).
		Mul(decimal.NewFromInt(int64(days))).
		Div(domain.DaysInYear.Mul(decimal.NewFromInt(100)))

	net := revenue.Sub(cost)

	marginRate := decimal.Zero
	if revenue.IsPositive() {
		marginRate = net.Div(revenue).Mul(decimal.NewFromInt(100))
	}

	return &MarginReport{
		CSSCode:              css.Code,
		CSSName:              css.Name,
		PeriodStart:          start,
		PeriodEnd:            end,
		PeriodDays:           days,
		InterestRevenue:      revenue,
		EstimatedFundingCost: cost,
		AverageLoanRate:      avgLoanRate,
		NetMargin:            net,
		MarginRate:           marginRate,
	}, nil
}

func meanLoanRate(loans []*domain.Loan) decimal.Decimal {
	if len(loans) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, l := range loans {
		sum = sum.Add(l.AnnualRate)
	}

	return sum.Div(decimal.NewFromInt(int64(len(loans))))
}

func meanPrincipal(advances []*domain.Advance) decimal.Decimal {
	if len(advances) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, a := range advances {
		sum = sum.Add(a.Principal)
	}

	return sum.Div(decimal.NewFromInt(int64(len(advances))))
}
