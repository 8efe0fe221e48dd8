package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a treasury bank account whose balances feed the liquidity
// projection.
type BankAccount struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// DailyBalance is the closing balance of an account on a given date.
type DailyBalance struct {
	AccountID      string
	Date           time.Time
	ClosingBalance decimal.Decimal
}
