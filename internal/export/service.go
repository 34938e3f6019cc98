package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Tonyvalayil97/KN/internal/engine"
)

// Sheet is the summary worksheet name.
const Sheet = "KN_Summary"

// Service produces XLSX bytes from extraction records. It never touches the
// filesystem; the caller decides where the workbook goes.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteXLSX returns an XLSX workbook (as bytes) with one row per record under
// the fixed header.
func (s *Service) WriteXLSX(records []*engine.ExtractionRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(Sheet); index == -1 {
		if _, err := f.NewSheet(Sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(Sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range engine.Header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(Sheet, cell, h)
	}

	for rowIdx, rec := range records {
		for col, v := range rec.Row() {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			_ = f.SetCellValue(Sheet, cell, v)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(Sheet, "A", "A", 20) // timestamp
	_ = f.SetColWidth(Sheet, "B", "B", 18) // filename
	_ = f.SetColWidth(Sheet, "C", "C", 12) // date
	_ = f.SetColWidth(Sheet, "E", "E", 36) // shipper
	_ = f.SetColWidth(Sheet, "F", "I", 14) // weights and volumes
	_ = f.SetColWidth(Sheet, "K", "K", 14) // subtotal

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
