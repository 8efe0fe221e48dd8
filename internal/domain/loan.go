package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is principal borrowed by the treasury from a bank to fund advances.
// Consumed read-only except for its accrued-interest running total.
type Loan struct {
	ID              string
	Reference       string
	Lender          string
	Principal       decimal.Decimal
	AnnualRate      decimal.Decimal // percentage
	StartDate       time.Time
	MaturityDate    time.Time
	Status          InstrumentStatus
	AccruedInterest decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccruesOn reports whether the loan is eligible for accrual on date.
// A loan past maturity is excluded even if still marked active.
func (l *Loan) AccruesOn(date time.Time) bool {
	d := Day(date)
	return l.Status == InstrumentActive &&
		!Day(l.StartDate).After(d) &&
		!Day(l.MaturityDate).Before(d)
}

// Validate checks the loan carries sane accrual inputs. Lender references
// follow no fixed format, so only the money fields are checked.
func (l *Loan) Validate() error {
	if err := ValidatePrincipal(l.Principal); err != nil {
		return err
	}

	return ValidateAnnualRate(l.AnnualRate)
}

// InstrumentID implements Instrument.
func (l *Loan) InstrumentID() string { return l.ID }

// Kind implements Instrument.
func (l *Loan) Kind() InstrumentKind { return KindLoan }

// PrincipalAmount implements Instrument.
func (l *Loan) PrincipalAmount() decimal.Decimal { return l.Principal }

// InterestRate implements Instrument.
func (l *Loan) InterestRate() decimal.Decimal { return l.AnnualRate }
