package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/Tonyvalayil97/KN/internal/common"
	"github.com/Tonyvalayil97/KN/internal/engine"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS extraction_batch (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	records    INTEGER NOT NULL,
	failures   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS extraction_record (
	id             TEXT PRIMARY KEY,
	batch_id       TEXT NOT NULL REFERENCES extraction_batch(id),
	created_at     TEXT NOT NULL,
	filename       TEXT NOT NULL,
	invoice_date   TEXT,
	currency       TEXT,
	shipper        TEXT,
	weight_kg      TEXT,
	volume_m3      TEXT,
	chargeable_kg  TEXT,
	chargeable_cbm TEXT,
	pieces         INTEGER,
	subtotal       TEXT,
	freight_mode   TEXT,
	freight_rate   TEXT
);`

// HistoryRepository persists batch summaries and their extracted rows. It
// lives entirely outside the extraction core: the engine never sees it.
type HistoryRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewHistoryRepository opens (or creates) the history database at dsn and
// applies the schema. Use ":memory:" for an ephemeral store.
func NewHistoryRepository(dsn string, logger *slog.Logger) (*HistoryRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, common.NewAppError("HISTORY_OPEN", dsn, err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, common.NewAppError("HISTORY_SCHEMA", dsn, err)
	}
	return &HistoryRepository{db: db, logger: logger}, nil
}

func (r *HistoryRepository) Close() error {
	return r.db.Close()
}

// SaveBatch records one processing run and its extracted rows in a single
// transaction.
func (r *HistoryRepository) SaveBatch(ctx context.Context, batchID uuid.UUID, records []*engine.ExtractionRecord, failures int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO extraction_batch (id, started_at, records, failures) VALUES (?, ?, ?, ?)`,
		batchID.String(), time.Now().UTC().Format(time.RFC3339), len(records), failures,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for _, rec := range records {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO extraction_record (
				id, batch_id, created_at, filename, invoice_date, currency, shipper,
				weight_kg, volume_m3, chargeable_kg, chargeable_cbm, pieces,
				subtotal, freight_mode, freight_rate
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), batchID.String(),
			rec.Timestamp.UTC().Format(time.RFC3339),
			rec.Filename,
			nullStr(rec.InvoiceDate), nullStr(rec.Currency), nullStr(rec.Shipper),
			nullDec(rec.WeightKg), nullDec(rec.VolumeM3),
			nullDec(rec.ChargeableKg), nullDec(rec.ChargeableCbm),
			nullInt(rec.Pieces),
			nullDec(rec.Subtotal), nullStr(rec.FreightMode), nullDec(rec.FreightRate),
		)
		if err != nil {
			return fmt.Errorf("insert record %s: %w", rec.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history tx: %w", err)
	}

	r.logger.Info("history.batch.saved",
		"batch_id", batchID.String(),
		"records", len(records),
		"failures", failures,
	)
	return nil
}

// CountRecords returns the total number of stored extraction rows.
func (r *HistoryRepository) CountRecords(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM extraction_record`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Decimals are stored as TEXT to keep exact values.
func nullDec(p *decimal.Decimal) any {
	if p == nil {
		return nil
	}
	return p.String()
}

func nullStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
