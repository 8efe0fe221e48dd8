package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
	"github.com/iho/treasury/internal/usecase"
)

// AccrualRunResponse represents an accrual run result in API responses.
type AccrualRunResponse struct {
	Kind          string          `json:"kind"`
	Date          string          `json:"date"`
	Processed     int             `json:"processed"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

// AccrualRunFromResult converts a use case run result to a response.
func AccrualRunFromResult(result *usecase.AccrualRunResult) *AccrualRunResponse {
	return &AccrualRunResponse{
		Kind:          string(result.Kind),
		Date:          result.Date.Format(domain.DateLayout),
		Processed:     result.Processed,
		TotalInterest: result.TotalInterest,
	}
}

// MarginReportResponse represents a CSS margin report in API responses.
type MarginReportResponse struct {
	CSSCode              string          `json:"css_code"`
	CSSName              string          `json:"css_name"`
	PeriodStart          string          `json:"period_start"`
	PeriodEnd            string          `json:"period_end"`
	PeriodDays           int             `json:"period_days"`
	InterestRevenue      decimal.Decimal `json:"interest_revenue"`
	EstimatedFundingCost decimal.Decimal `json:"estimated_funding_cost"`
	AverageLoanRate      decimal.Decimal `json:"average_loan_rate"`
	NetMargin            decimal.Decimal `json:"net_margin"`
	MarginRate           decimal.Decimal `json:"margin_rate"`
}

// MarginReportFromUseCase converts a margin report to a response.
func MarginReportFromUseCase(report *usecase.MarginReport) *MarginReportResponse {
	return &MarginReportResponse{
		CSSCode:              report.CSSCode,
		CSSName:              report.CSSName,
		PeriodStart:          report.PeriodStart.Format(domain.DateLayout),
		PeriodEnd:            report.PeriodEnd.Format(domain.DateLayout),
		PeriodDays:           report.PeriodDays,
		InterestRevenue:      report.InterestRevenue,
		EstimatedFundingCost: report.EstimatedFundingCost.Round(2),
		AverageLoanRate:      report.AverageLoanRate,
		NetMargin:            report.NetMargin.Round(2),
		MarginRate:           report.MarginRate.Round(2),
	}
}

// DayNeedResponse represents one request's disbursement need on a date.
type DayNeedResponse struct {
	Reference string          `json:"reference"`
	CSSName   string          `json:"css_name"`
	Amount    decimal.Decimal `json:"amount"`
}

// DailyDisbursementResponse aggregates one day of the liquidity window.
type DailyDisbursementResponse struct {
	Date     string            `json:"date"`
	Total    decimal.Decimal   `json:"total"`
	Requests []DayNeedResponse `json:"requests"`
}

// LiquidityReportResponse represents a liquidity projection in API responses.
type LiquidityReportResponse struct {
	WindowStart        string                      `json:"window_start"`
	WindowEnd          string                      `json:"window_end"`
	HorizonDays        int                         `json:"horizon_days"`
	TotalBalance       decimal.Decimal             `json:"total_balance"`
	TotalDisbursements decimal.Decimal             `json:"total_disbursements"`
	ByDay              []DailyDisbursementResponse `json:"by_day"`
	NetNeed            decimal.Decimal             `json:"net_need"`
	Status             string                      `json:"status"`
}

// LiquidityReportFromUseCase converts a liquidity report to a response.
func LiquidityReportFromUseCase(report *usecase.LiquidityReport) *LiquidityReportResponse {
	byDay := make([]DailyDisbursementResponse, len(report.ByDay))
	for i, day := range report.ByDay {
		requests := make([]DayNeedResponse, len(day.Requests))
		for j, need := range day.Requests {
			requests[j] = DayNeedResponse{
				Reference: need.RequestReference,
				CSSName:   need.CSSName,
				Amount:    need.Amount,
			}
		}

		byDay[i] = DailyDisbursementResponse{
			Date:     day.Date.Format(domain.DateLayout),
			Total:    day.Total,
			Requests: requests,
		}
	}

	return &LiquidityReportResponse{
		WindowStart:        report.WindowStart.Format(domain.DateLayout),
		WindowEnd:          report.WindowEnd.Format(domain.DateLayout),
		HorizonDays:        report.HorizonDays,
		TotalBalance:       report.TotalBalance,
		TotalDisbursements: report.TotalDisbursements,
		ByDay:              byDay,
		NetNeed:            report.NetNeed,
		Status:             string(report.Status),
	}
}

// InterestEntryResponse represents an interest entry in API responses.
type InterestEntryResponse struct {
	ID         string          `json:"id"`
	EntryDate  string          `json:"entry_date"`
	Balance    decimal.Decimal `json:"balance"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Interest   decimal.Decimal `json:"interest"`
	Cumulative decimal.Decimal `json:"cumulative"`
	CreatedAt  time.Time       `json:"created_at"`
}

// InterestEntryFromDomain converts a domain entry to a response.
func InterestEntryFromDomain(e *domain.InterestEntry) *InterestEntryResponse {
	return &InterestEntryResponse{
		ID:         e.ID,
		EntryDate:  e.EntryDate.Format(domain.DateLayout),
		Balance:    e.Balance,
		DailyRate:  e.DailyRate,
		Interest:   e.Interest,
		Cumulative: e.Cumulative,
		CreatedAt:  e.CreatedAt,
	}
}

// ListInterestEntriesResponse wraps one page of an interest schedule.
type ListInterestEntriesResponse struct {
	Entries []*InterestEntryResponse `json:"entries"`
	Count   int                      `json:"count"`
}

// InterestEntriesFromDomain converts domain entries to responses.
func InterestEntriesFromDomain(entries []*domain.InterestEntry) []*InterestEntryResponse {
	result := make([]*InterestEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = InterestEntryFromDomain(e)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
