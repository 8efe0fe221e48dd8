package dto

import (
	"time"

	"github.com/iho/treasury/internal/domain"
	"github.com/iho/treasury/internal/usecase"
)

// RunAccrualRequest represents a request to run a daily accrual.
type RunAccrualRequest struct {
	// Date is the accrual date as YYYY-MM-DD; empty means today.
	Date string `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RunAccrualRequest) ToUseCaseInput() (usecase.AccrueInput, error) {
	if r.Date == "" {
		return usecase.AccrueInput{}, nil
	}

	date, err := time.Parse(domain.DateLayout, r.Date)
	if err != nil {
		return usecase.AccrueInput{}, err
	}

	return usecase.AccrueInput{Date: &date}, nil
}

// ParseDateQuery parses an optional YYYY-MM-DD query value.
func ParseDateQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
