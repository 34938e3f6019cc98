package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExtractionRecord is the normalized output for one invoice document.
// Every field except Timestamp and Filename is optional: extraction is
// best-effort and an absent field is a normal outcome, not an error.
type ExtractionRecord struct {
	Timestamp     time.Time
	Filename      string
	InvoiceDate   *string // YYYY-MM-DD
	Currency      *string // ISO 4217
	Shipper       *string
	WeightKg      *decimal.Decimal
	VolumeM3      *decimal.Decimal
	ChargeableKg  *decimal.Decimal
	ChargeableCbm *decimal.Decimal
	Pieces        *int
	Subtotal      *decimal.Decimal
	FreightMode   *string
	FreightRate   *decimal.Decimal
}

// Header is the fixed column order for tabular export.
func Header() []string {
	return []string{
		"Timestamp",
		"Filename",
		"Invoice_Date",
		"Currency",
		"Shipper",
		"Weight_KG",
		"Volume_M3",
		"Chargeable_KG",
		"Chargeable_CBM",
		"Pieces",
		"Subtotal",
		"Freight_Mode",
		"Freight_Rate",
	}
}

// Row flattens the record into Header order. Absent fields yield nil cells.
func (r *ExtractionRecord) Row() []any {
	return []any{
		r.Timestamp.Format("2006-01-02 15:04:05"),
		r.Filename,
		strCell(r.InvoiceDate),
		strCell(r.Currency),
		strCell(r.Shipper),
		decCell(r.WeightKg),
		decCell(r.VolumeM3),
		decCell(r.ChargeableKg),
		decCell(r.ChargeableCbm),
		intCell(r.Pieces),
		decCell(r.Subtotal),
		strCell(r.FreightMode),
		decCell(r.FreightRate),
	}
}

func strCell(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func decCell(p *decimal.Decimal) any {
	if p == nil {
		return nil
	}
	v, _ := p.Float64()
	return v
}

func intCell(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
