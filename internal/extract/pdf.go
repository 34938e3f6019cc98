package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads text from native-text PDF invoices. A scanned
// (image-only) PDF yields empty text, which the engine reports as a
// document-level failure.
type PDFExtractor struct{}

func (PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{}, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		pages = append(pages, text)
	}

	return TextExtractionResult{
		Text:   strings.Join(pages, "\n"),
		Pages:  total,
		Method: "pdf-text",
	}, nil
}
