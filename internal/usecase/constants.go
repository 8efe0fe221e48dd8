package usecase

import "time"

const (
	// DefaultMarginWindowDays is the margin report window when the caller
	// gives no period start.
	DefaultMarginWindowDays = 30

	// DefaultLiquidityHorizonDays is the projection window when the caller
	// gives no horizon.
	DefaultLiquidityHorizonDays = 7

	// runLockTTL bounds how long an accrual run may hold its date lock.
	runLockTTL = 10 * time.Minute
)
