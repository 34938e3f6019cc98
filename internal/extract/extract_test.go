package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tonyvalayil97/KN/internal/common"
)

func TestPlainTextExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.txt")
	content := "SUBTOTAL USD 100.00\nTOTAL PIECES 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := (PlainTextExtractor{}).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Text != content {
		t.Errorf("text mismatch: got %q", res.Text)
	}
	if res.Method != "plain-text" {
		t.Errorf("expected method plain-text, got %q", res.Method)
	}
	if res.Pages != 1 {
		t.Errorf("expected 1 page, got %d", res.Pages)
	}
}

func TestPlainTextExtractorMissingFile(t *testing.T) {
	_, err := (PlainTextExtractor{}).Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestForPath(t *testing.T) {
	if ex, err := ForPath("invoices/a.pdf"); err != nil {
		t.Errorf("pdf: unexpected error %v", err)
	} else if _, ok := ex.(PDFExtractor); !ok {
		t.Errorf("pdf: got %T", ex)
	}

	if ex, err := ForPath("invoices/b.TXT"); err != nil {
		t.Errorf("txt: unexpected error %v", err)
	} else if _, ok := ex.(PlainTextExtractor); !ok {
		t.Errorf("txt: got %T", ex)
	}

	if _, err := ForPath("invoices/c.docx"); !errors.Is(err, common.ErrUnsupported) {
		t.Errorf("docx: expected ErrUnsupported, got %v", err)
	}
}
