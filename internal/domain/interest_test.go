package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyInterest(t *testing.T) {
	tests := []struct {
		name       string
		principal  string
		annualRate string
		want       string
	}{
		{
			// 100000 * (4.5/365)/100 = 12.3287... -> 12.33
			name:       "standard rate conversion",
			principal:  "100000.00",
			annualRate: "4.5",
			want:       "12.33",
		},
		{
			name:       "six percent on 50000",
			principal:  "50000.00",
			annualRate: "6.0",
			want:       "8.22",
		},
		{
			name:       "zero rate",
			principal:  "100000.00",
			annualRate: "0",
			want:       "0",
		},
		{
			name:       "zero principal",
			principal:  "0",
			annualRate: "4.5",
			want:       "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := decimal.RequireFromString(tt.principal)
			rate := decimal.RequireFromString(tt.annualRate)
			want := decimal.RequireFromString(tt.want)

			got := DailyInterest(principal, rate)
			if !got.Equal(want) {
				t.Errorf("DailyInterest(%s, %s) = %s, want %s", tt.principal, tt.annualRate, got, want)
			}
		})
	}
}

func TestDailyRate(t *testing.T) {
	rate := DailyRate(decimal.RequireFromString("4.5"))

	// 4.5/365/100 ~= 0.000123287671
	lo := decimal.RequireFromString("0.000123287")
	hi := decimal.RequireFromString("0.000123288")
	if rate.LessThan(lo) || rate.GreaterThan(hi) {
		t.Errorf("DailyRate(4.5) = %s, want ~0.0001232876", rate)
	}
}

func TestChain(t *testing.T) {
	adv := &Advance{
		ID:         "adv-1",
		Principal:  decimal.RequireFromString("100000.00"),
		AnnualRate: decimal.RequireFromString("4.5"),
		Status:     InstrumentActive,
		StartDate:  date(2024, time.January, 1),
	}

	first := Chain(adv, date(2024, time.January, 10), nil)
	if !first.Cumulative.Equal(first.Interest) {
		t.Errorf("first entry cumulative = %s, want %s", first.Cumulative, first.Interest)
	}
	if first.Kind != KindAdvance {
		t.Errorf("entry kind = %s, want %s", first.Kind, KindAdvance)
	}
	if !first.Balance.Equal(adv.Principal) {
		t.Errorf("entry balance = %s, want %s", first.Balance, adv.Principal)
	}

	second := Chain(adv, date(2024, time.January, 11), first)
	want := first.Cumulative.Add(second.Interest)
	if !second.Cumulative.Equal(want) {
		t.Errorf("chained cumulative = %s, want %s", second.Cumulative, want)
	}
}

func TestHasGapBefore(t *testing.T) {
	d := date(2024, time.March, 10)

	tests := []struct {
		name  string
		prior *InterestEntry
		want  bool
	}{
		{name: "no prior entry", prior: nil, want: false},
		{name: "previous day", prior: &InterestEntry{EntryDate: date(2024, time.March, 9)}, want: false},
		{name: "two days back", prior: &InterestEntry{EntryDate: date(2024, time.March, 8)}, want: true},
		{name: "week back", prior: &InterestEntry{EntryDate: date(2024, time.March, 3)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasGapBefore(d, tt.prior); got != tt.want {
				t.Errorf("HasGapBefore = %v, want %v", got, tt.want)
			}
		})
	}
}
