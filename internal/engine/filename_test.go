package engine

import "testing"

func TestResolveFilename(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		wantID       string
		wantCurrency string // "" means absent
	}{
		{"letter prefix wins", "KN93012345_USD.pdf", "KN93012345", "USD"},
		{"bare digit run", "invoice 93012345.pdf", "93012345", ""},
		{"digits with trailing letter", "sched_4711234A_EUR.pdf", "4711234A", "EUR"},
		{"prefix not carved from a word", "INVOICE93012345.pdf", "93012345", ""},
		{"no identifier falls back to raw name", "elegant-shoes.pdf", "elegant-shoes.pdf", ""},
		{"currency lowercase in name", "8812345_eur.pdf", "8812345", "EUR"},
		{"currency priority order", "9912345_EUR_USD.pdf", "9912345", "USD"},
		{"token inside a word ignored", "FLEURET_1234567.pdf", "1234567", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, currency := ResolveFilename(tc.filename)
			if id != tc.wantID {
				t.Errorf("identifier: expected %q, got %q", tc.wantID, id)
			}
			if tc.wantCurrency == "" {
				if currency != nil {
					t.Errorf("currency: expected absent, got %q", *currency)
				}
				return
			}
			if currency == nil {
				t.Fatalf("currency: expected %q, got absent", tc.wantCurrency)
			}
			if *currency != tc.wantCurrency {
				t.Errorf("currency: expected %q, got %q", tc.wantCurrency, *currency)
			}
		})
	}
}
