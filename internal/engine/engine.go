package engine

import (
	"errors"
	"strings"
	"time"
)

// ErrNoText reports a document-level failure: the text-extraction
// collaborator produced no usable text for the document. Sparse field
// extraction is never an error — an invoice that matches no pattern still
// yields a record with Timestamp and Filename set.
var ErrNoText = errors.New("no text extracted from document")

// Engine is the multi-format field-extraction engine. It is stateless across
// documents and safe for concurrent use.
type Engine struct {
	table patternTable
}

// New loads and compiles the carrier-format pattern table.
func New() (*Engine, error) {
	table, err := loadPatternTable()
	if err != nil {
		return nil, err
	}
	return &Engine{table: table}, nil
}

// Extract runs every field extractor against the full document text,
// computes derived values, and assembles one ExtractionRecord. The text is
// expected to have pages pre-joined in document order.
func (e *Engine) Extract(text, filename string) (*ExtractionRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	id, fileCurrency := ResolveFilename(filename)
	rec := &ExtractionRecord{
		Timestamp: time.Now(),
		Filename:  id,
	}

	rec.InvoiceDate = e.table.extractDate(text)
	rec.Shipper = e.table.extractShipper(text)
	rec.WeightKg = e.table.extractDecimal("weight_kg", text)
	rec.ChargeableKg = e.table.extractDecimal("chargeable_kg", text)
	rec.Pieces = e.table.extractInt("pieces", text)
	rec.Subtotal = e.table.extractDecimal("subtotal", text)
	rec.FreightMode = e.table.extractMode(text)
	rec.FreightRate = e.table.extractDecimal("freight_rate", text)

	// Document text wins over filename tokens; a single format never
	// provides both.
	rec.Currency = e.table.extractCurrency(text)
	if rec.Currency == nil {
		rec.Currency = fileCurrency
	}

	if v := e.table.extractVolume(text); v != nil {
		vol := v.value
		if v.volumetricKg {
			vol = deriveVolume(v.value)
		}
		rec.VolumeM3 = &vol
		if v.mirrorCbm {
			cbm := vol
			rec.ChargeableCbm = &cbm
		}
	}

	if rec.ChargeableKg == nil {
		rec.ChargeableKg = deriveChargeableKg(rec.WeightKg, rec.VolumeM3)
	}

	return rec, nil
}
