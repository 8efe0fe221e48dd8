package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateRequestReference(t *testing.T) {
	tests := []struct {
		ref     string
		wantErr bool
	}{
		{"DEM-2024-001", false},
		{"DEM-2024-1234", false},
		{"DEM-24-001", true},
		{"AVN-2024-001", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateRequestReference(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRequestReference(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
		}
	}
}

func TestValidateAdvanceReference(t *testing.T) {
	if err := ValidateAdvanceReference("AVN-2024-007"); err != nil {
		t.Errorf("valid reference rejected: %v", err)
	}
	if err := ValidateAdvanceReference("DEM-2024-007"); err == nil {
		t.Error("request reference accepted as advance reference")
	}
}

func TestValidatePrincipal(t *testing.T) {
	if err := ValidatePrincipal(decimal.NewFromInt(100000)); err != nil {
		t.Errorf("valid principal rejected: %v", err)
	}
	if err := ValidatePrincipal(decimal.Zero); err == nil {
		t.Error("zero principal accepted")
	}
	if err := ValidatePrincipal(decimal.RequireFromString("2000000000000")); err == nil {
		t.Error("oversized principal accepted")
	}
}

func TestValidateAnnualRate(t *testing.T) {
	if err := ValidateAnnualRate(decimal.RequireFromString("4.5")); err != nil {
		t.Errorf("valid rate rejected: %v", err)
	}
	if err := ValidateAnnualRate(decimal.RequireFromString("-1")); err == nil {
		t.Error("negative rate accepted")
	}
	if err := ValidateAnnualRate(decimal.RequireFromString("150")); err == nil {
		t.Error("rate above 100% accepted")
	}
}
