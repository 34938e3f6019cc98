package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestDeriveChargeableKg(t *testing.T) {
	tests := []struct {
		name     string
		weightKg *decimal.Decimal
		volumeM3 *decimal.Decimal
		want     string // "" means absent
	}{
		{"volumetric exceeds actual", dec("100"), dec("1"), "167"},
		{"actual exceeds volumetric", dec("500"), dec("1"), "500"},
		{"weight only", dec("250"), nil, "250"},
		{"volume only", nil, dec("2"), "334"},
		{"neither", nil, nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := deriveChargeableKg(tc.weightKg, tc.volumeM3)
			if tc.want == "" {
				if got != nil {
					t.Errorf("expected absent, got %s", got.String())
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got absent", tc.want)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("expected %s, got %s", tc.want, got.String())
			}
		})
	}
}

func TestDeriveVolume(t *testing.T) {
	got := deriveVolume(decimal.RequireFromString("334"))
	if !got.Equal(decimal.RequireFromString("2")) {
		t.Errorf("334 kg / 167 should be 2 m3, got %s", got.String())
	}
}
