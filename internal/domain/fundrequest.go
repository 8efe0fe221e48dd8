package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the workflow state of a fund request. The workflow itself
// lives outside this service; only approved requests are read here.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestVersed    RequestStatus = "versed"
	RequestCancelled RequestStatus = "cancelled"
)

// FundRequest is the read model of a CSS fund request aggregate.
type FundRequest struct {
	ID          string
	Reference   string
	CSSID       string
	Status      RequestStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// DayNeed is one day-level disbursement need of an approved fund request.
type DayNeed struct {
	RequestReference string
	CSSName          string
	Date             time.Time
	Amount           decimal.Decimal
}
