package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/Tonyvalayil97/KN/internal/engine"
	"github.com/Tonyvalayil97/KN/internal/extract"
)

// Failure describes one document that could not be processed. It never
// aborts the batch; the caller surfaces it as a per-document warning.
type Failure struct {
	Path string
	Err  error
}

// BatchResult is the outcome of one processing run.
type BatchResult struct {
	BatchID  uuid.UUID
	Records  []*engine.ExtractionRecord
	Failures []Failure
}

// Processor runs text extraction and field extraction over a batch of
// documents. Documents are independent, so the batch fans out over a bounded
// worker pool; result order is not guaranteed to follow input order.
type Processor struct {
	Engine  *engine.Engine
	Open    func(path string) (extract.TextExtractor, error)
	Log     *slog.Logger
	Workers int
}

func NewProcessor(eng *engine.Engine, logger *slog.Logger, workers int) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &Processor{Engine: eng, Open: extract.ForPath, Log: logger, Workers: workers}
}

// ProcessFiles extracts every document, collecting records and per-document
// failures. Each input yields exactly one record or one failure.
func (p *Processor) ProcessFiles(ctx context.Context, paths []string) BatchResult {
	result := BatchResult{BatchID: uuid.New()}

	workers := p.Workers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				rec, err := p.processOne(ctx, path)
				mu.Lock()
				if err != nil {
					result.Failures = append(result.Failures, Failure{Path: path, Err: err})
				} else {
					result.Records = append(result.Records, rec)
				}
				mu.Unlock()
			}
		}()
	}
	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	p.Log.Info("batch.done",
		"batch_id", result.BatchID,
		"documents", len(paths),
		"records", len(result.Records),
		"failures", len(result.Failures),
	)
	return result
}

func (p *Processor) processOne(ctx context.Context, path string) (*engine.ExtractionRecord, error) {
	name := filepath.Base(path)

	ex, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	res, err := ex.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	rec, err := p.Engine.Extract(res.Text, name)
	if err != nil {
		return nil, err
	}

	p.Log.Info("extract.ok",
		"file", name,
		"pages", res.Pages,
		"method", res.Method,
	)
	return rec, nil
}
