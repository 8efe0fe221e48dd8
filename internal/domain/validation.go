package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidReference = errors.New("invalid reference format")
	ErrInvalidRate      = errors.New("invalid annual rate")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
	ErrInvalidAmount    = errors.New("amount must be positive")
)

// Validation constants
const (
	MaxPrincipalAmount = "1000000000000" // 1 trillion
	MaxAnnualRate      = "100"
)

// Reference formats: DEM-2024-001 for fund requests, AVN-2024-001 for advances.
var (
	requestReferenceRegex = regexp.MustCompile(`^DEM-\d{4}-\d{3,}$`)
	advanceReferenceRegex = regexp.MustCompile(`^AVN-\d{4}-\d{3,}$`)
)

// ValidateRequestReference validates a fund request reference.
func ValidateRequestReference(ref string) error {
	if !requestReferenceRegex.MatchString(strings.TrimSpace(ref)) {
		return fmt.Errorf("%w: %s", ErrInvalidReference, ref)
	}

	return nil
}

// ValidateAdvanceReference validates an advance reference.
func ValidateAdvanceReference(ref string) error {
	if !advanceReferenceRegex.MatchString(strings.TrimSpace(ref)) {
		return fmt.Errorf("%w: %s", ErrInvalidReference, ref)
	}

	return nil
}

// ValidatePrincipal validates a principal amount.
func ValidatePrincipal(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxPrincipalAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxPrincipalAmount)
	}

	return nil
}

// ValidateAnnualRate validates an annual interest rate percentage.
func ValidateAnnualRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: rate cannot be negative", ErrInvalidRate)
	}

	maxRate, _ := decimal.NewFromString(MaxAnnualRate)
	if rate.GreaterThan(maxRate) {
		return fmt.Errorf("%w: rate exceeds %s%%", ErrInvalidRate, MaxAnnualRate)
	}

	return nil
}
