package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Tonyvalayil97/KN/internal/engine"
)

func TestSaveBatch(t *testing.T) {
	repo, err := NewHistoryRepository(":memory:", nil)
	if err != nil {
		t.Fatalf("NewHistoryRepository failed: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	subtotal := decimal.RequireFromString("2345.67")
	currency := "USD"
	pieces := 42
	full := &engine.ExtractionRecord{
		Timestamp: time.Now(),
		Filename:  "KN93012345",
		Currency:  &currency,
		Pieces:    &pieces,
		Subtotal:  &subtotal,
	}
	sparse := &engine.ExtractionRecord{
		Timestamp: time.Now(),
		Filename:  "scan001.pdf",
	}

	batchID := uuid.New()
	if err := repo.SaveBatch(ctx, batchID, []*engine.ExtractionRecord{full, sparse}, 1); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	n, err := repo.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 stored records, got %d", n)
	}
}
