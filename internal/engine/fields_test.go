package engine

import (
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // "" means absent
	}{
		{"dot form is day.month.year", "15.03.2024", "2024-03-15"},
		{"dash form passes through", "2024-03-15", "2024-03-15"},
		{"dot form new year boundary", "01.01.2025", "2025-01-01"},
		{"unknown separator", "15/03/2024", ""},
		{"too few dot groups", "03.2024", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeDate(tc.in)
			if tc.want == "" {
				if got != nil {
					t.Errorf("expected absent, got %q", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %q, got absent", tc.want)
			}
			if *got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, *got)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // "" means absent
	}{
		{"thousands separators stripped", "12,345.67", "12345.67"},
		{"plain integer", "42", "42"},
		{"not a number", "not-a-number", ""},
		{"bare separator", ",", ""},
		{"empty", "", ""},
		{"negative rejected", "-5.00", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDecimal(tc.in)
			if tc.want == "" {
				if got != nil {
					t.Errorf("expected absent, got %s", got.String())
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got absent", tc.want)
			}
			if got.String() != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got.String())
			}
		})
	}
}

func TestShipperFirstLineOnly(t *testing.T) {
	table, err := loadPatternTable()
	if err != nil {
		t.Fatalf("loadPatternTable failed: %v", err)
	}

	text := "SHIPPER NOTIFY\n  ELEGANT SHOES LTD  \nSECOND ADDRESS LINE\nCONSIGNEE"
	got := table.extractShipper(text)
	if got == nil {
		t.Fatal("expected shipper, got absent")
	}
	if *got != "ELEGANT SHOES LTD" {
		t.Errorf("expected first line only, trimmed; got %q", *got)
	}
}
