package domain

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Day truncates a timestamp to a calendar date (UTC midnight).
// All accrual and report math works on days, never on clock time.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the inclusive day count of [from, to].
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours()/24) + 1
}
