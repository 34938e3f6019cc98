package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Tonyvalayil97/KN/constants"
	"github.com/Tonyvalayil97/KN/internal/common"
	"github.com/Tonyvalayil97/KN/internal/engine"
	"github.com/Tonyvalayil97/KN/internal/export"
	"github.com/Tonyvalayil97/KN/internal/pipeline"
	"github.com/Tonyvalayil97/KN/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir     = flag.String("dir", "", "directory of invoice files to process (required)")
		out     = flag.String("out", "", "output XLSX file path (defaults to KN_OUTPUT)")
		dbPath  = flag.String("db", "", "optional sqlite file for extraction history (defaults to KN_DB_PATH)")
		workers = flag.Int("workers", 0, "concurrent documents (defaults to KN_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *out == "" {
		*out = cfg.Export.OutputPath
	}
	if *dbPath == "" {
		*dbPath = cfg.Export.HistoryDSN
	}
	if *workers <= 0 {
		*workers = cfg.Batch.Workers
	}

	ctx := context.Background()

	eng, err := engine.New()
	if err != nil {
		logger.Error("failed to load carrier formats", "error", err)
		os.Exit(1)
	}

	paths, err := collectFiles(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		printError("No invoice files found in %s\n", *dir)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(eng, logger, *workers)
	result := processor.ProcessFiles(ctx, paths)
	for _, f := range result.Failures {
		logger.Warn("could not extract data", "file", f.Path, "error", f.Err)
	}
	if len(result.Records) == 0 {
		logger.Error("no data extracted")
		os.Exit(1)
	}

	exportService := export.NewService(logger)
	xlsxBytes, err := exportService.WriteXLSX(result.Records)
	if err != nil {
		logger.Error("failed to build workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	if *dbPath != "" {
		hist, err := repository.NewHistoryRepository(*dbPath, logger)
		if err != nil {
			logger.Error("failed to open history database", "path", *dbPath, "error", err)
		} else {
			defer hist.Close()
			if err := hist.SaveBatch(ctx, result.BatchID, result.Records, len(result.Failures)); err != nil {
				logger.Error("failed to save batch history", "error", err)
			}
		}
	}

	fmt.Printf("Extraction complete!\n")
	fmt.Printf("- Files processed: %d\n", len(paths))
	fmt.Printf("- Records extracted: %d\n", len(result.Records))
	fmt.Printf("- Failures: %d\n", len(result.Failures))
	fmt.Printf("- Output: %s\n", *out)
}

// collectFiles walks dir and returns every file with an allowed extension.
func collectFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
