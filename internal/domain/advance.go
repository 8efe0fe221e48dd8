package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstrumentStatus is the lifecycle state of an advance or loan.
type InstrumentStatus string

const (
	InstrumentActive InstrumentStatus = "active"
	InstrumentClosed InstrumentStatus = "closed"
)

// Advance is principal drawn by a CSS against an approved fund request.
// It accrues interest daily until closed.
type Advance struct {
	ID              string
	Reference       string
	CSSID           string
	Principal       decimal.Decimal
	AnnualRate      decimal.Decimal // percentage, e.g. 4.500 means 4.5%
	StartDate       time.Time
	PlannedEndDate  *time.Time
	ActualEndDate   *time.Time
	Status          InstrumentStatus
	AccruedInterest decimal.Decimal
	LastAccrualDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccruesOn reports whether the advance is eligible for accrual on date.
// An advance starting on the date itself is included.
func (a *Advance) AccruesOn(date time.Time) bool {
	return a.Status == InstrumentActive && !Day(a.StartDate).After(Day(date))
}

// Validate checks the advance carries sane accrual inputs.
func (a *Advance) Validate() error {
	if err := ValidateAdvanceReference(a.Reference); err != nil {
		return err
	}
	if err := ValidatePrincipal(a.Principal); err != nil {
		return err
	}

	return ValidateAnnualRate(a.AnnualRate)
}

// InstrumentID implements Instrument.
func (a *Advance) InstrumentID() string { return a.ID }

// Kind implements Instrument.
func (a *Advance) Kind() InstrumentKind { return KindAdvance }

// PrincipalAmount implements Instrument.
func (a *Advance) PrincipalAmount() decimal.Decimal { return a.Principal }

// InterestRate implements Instrument.
func (a *Advance) InterestRate() decimal.Decimal { return a.AnnualRate }
