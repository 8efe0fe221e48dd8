package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstrumentKind tags which ledger an interest entry belongs to.
type InstrumentKind string

const (
	KindAdvance InstrumentKind = "advance"
	KindLoan    InstrumentKind = "loan"
)

// DaysInYear is the accrual base for converting annual rates to daily rates.
var DaysInYear = decimal.NewFromInt(365)

var hundred = decimal.NewFromInt(100)

// Instrument is an interest-bearing position: an advance or a loan.
type Instrument interface {
	InstrumentID() string
	Kind() InstrumentKind
	PrincipalAmount() decimal.Decimal
	InterestRate() decimal.Decimal
	Validate() error
}

// InterestEntry is an immutable daily accrual fact. Exactly one entry may
// exist per (kind, instrument, date).
type InterestEntry struct {
	ID           string
	Kind         InstrumentKind
	InstrumentID string
	EntryDate    time.Time
	Balance      decimal.Decimal // instrument principal on the entry date
	DailyRate    decimal.Decimal // fraction, annual rate / 365 / 100
	Interest     decimal.Decimal // interest accrued that day, 2 decimals
	Cumulative   decimal.Decimal // running total through the entry date
	CreatedAt    time.Time
}

// DailyRate converts an annual percentage rate to a daily fraction.
func DailyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(DaysInYear).Div(hundred)
}

// DailyInterest computes one day of interest on principal at an annual
// percentage rate, rounded to cents.
func DailyInterest(principal, annualRate decimal.Decimal) decimal.Decimal {
	return principal.Mul(annualRate.Div(DaysInYear)).Div(hundred).Round(2)
}

// Chain builds the entry for date given the latest prior entry, if any.
// The prior entry is looked up by latest date strictly before the entry date,
// so a gap in the schedule does not break the cumulative chain.
func Chain(inst Instrument, date time.Time, prior *InterestEntry) *InterestEntry {
	interest := DailyInterest(inst.PrincipalAmount(), inst.InterestRate())

	cumulative := interest
	if prior != nil {
		cumulative = prior.Cumulative.Add(interest)
	}

	return &InterestEntry{
		Kind:         inst.Kind(),
		InstrumentID: inst.InstrumentID(),
		EntryDate:    Day(date),
		Balance:      inst.PrincipalAmount(),
		DailyRate:    DailyRate(inst.InterestRate()),
		Interest:     interest,
		Cumulative:   cumulative,
	}
}

// HasGapBefore reports whether prior leaves uncaptured days before date:
// the prior entry exists but is older than the immediately preceding day.
func HasGapBefore(date time.Time, prior *InterestEntry) bool {
	if prior == nil {
		return false
	}
	return Day(prior.EntryDate).Before(Day(date).AddDate(0, 0, -1))
}
