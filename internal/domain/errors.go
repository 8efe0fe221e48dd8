package domain

import "errors"

var (
	// Lookup errors
	ErrCSSNotFound     = errors.New("css not found")
	ErrAdvanceNotFound = errors.New("advance not found")
	ErrLoanNotFound    = errors.New("loan not found")

	// Accrual errors
	ErrDuplicateInterestEntry = errors.New("interest entry already exists for this date")
	ErrRunInProgress          = errors.New("accrual run already in progress for this date")

	// Report errors
	ErrInvalidPeriod  = errors.New("period start must not be after period end")
	ErrInvalidHorizon = errors.New("horizon must not be negative")
)
