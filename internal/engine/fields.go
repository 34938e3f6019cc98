package engine

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Tonyvalayil97/KN/constants"
)

// firstMatch applies a field's candidates in precedence order and returns the
// winning pattern plus its first capture group.
func (t patternTable) firstMatch(field, text string) (fieldPattern, string, bool) {
	for _, p := range t[field] {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		capture := ""
		if len(m) > 1 {
			capture = m[1]
		}
		return p, capture, true
	}
	return fieldPattern{}, "", false
}

func (t patternTable) extractDate(text string) *string {
	_, capture, ok := t.firstMatch("invoice_date", text)
	if !ok {
		return nil
	}
	return normalizeDate(capture)
}

// normalizeDate re-emits a captured date in year-month-day order. The source
// notation is branched on the separator: dot form is day.month.year, dash
// form is already ISO ordered. Anything else is treated as absent rather
// than reassembled blind.
func normalizeDate(raw string) *string {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.Contains(raw, "."):
		parts := strings.Split(raw, ".")
		if len(parts) != 3 {
			return nil
		}
		iso := parts[2] + "-" + parts[1] + "-" + parts[0]
		return &iso
	case strings.Contains(raw, "-"):
		return &raw
	}
	return nil
}

func (t patternTable) extractShipper(text string) *string {
	p, capture, ok := t.firstMatch("shipper", text)
	if !ok {
		return nil
	}
	block := strings.TrimSpace(capture)
	if block == "" {
		return nil
	}

	var name string
	switch p.rule {
	case "join_lines":
		// The whole captured span is retained; line breaks become spaces.
		name = strings.Join(strings.Fields(block), " ")
	default:
		name = strings.TrimSpace(strings.SplitN(block, "\n", 2)[0])
	}
	if name == "" {
		return nil
	}
	return &name
}

func (t patternTable) extractCurrency(text string) *string {
	_, capture, ok := t.firstMatch("currency", text)
	if !ok {
		return nil
	}
	c := strings.ToUpper(strings.TrimSpace(capture))
	if len(c) != 3 {
		return nil
	}
	return &c
}

func (t patternTable) extractDecimal(field, text string) *decimal.Decimal {
	_, capture, ok := t.firstMatch(field, text)
	if !ok {
		return nil
	}
	return parseDecimal(capture)
}

func (t patternTable) extractInt(field, text string) *int {
	_, capture, ok := t.firstMatch(field, text)
	if !ok {
		return nil
	}
	cleaned := strings.ReplaceAll(strings.TrimSpace(capture), ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func (t patternTable) extractMode(text string) *string {
	for _, p := range t["freight_mode"] {
		if !p.re.MatchString(text) {
			continue
		}
		switch p.value {
		case constants.FreightModeAir, constants.FreightModeSea, constants.FreightModeRoad:
			v := p.value
			return &v
		}
	}
	return nil
}

// volumeMatch carries the captured volume figure plus the format flags that
// steer derivation: volumetricKg marks a volume-weight-in-kg figure that must
// be divided down to CBM, mirrorCbm marks formats whose chargeable CBM column
// simply mirrors the volume.
type volumeMatch struct {
	value        decimal.Decimal
	mirrorCbm    bool
	volumetricKg bool
}

func (t patternTable) extractVolume(text string) *volumeMatch {
	p, capture, ok := t.firstMatch("volume_m3", text)
	if !ok {
		return nil
	}
	d := parseDecimal(capture)
	if d == nil {
		return nil
	}
	return &volumeMatch{value: *d, mirrorCbm: p.mirrorCbm, volumetricKg: p.volumetricKg}
}

// parseDecimal strips thousands separators and converts. A malformed capture
// should not occur given the patterns, but is treated as absent rather than
// raising; negative amounts are likewise rejected.
func parseDecimal(raw string) *decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}
