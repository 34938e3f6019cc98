package extract

import (
	"context"
	"path/filepath"

	"github.com/Tonyvalayil97/KN/constants"
	"github.com/Tonyvalayil97/KN/internal/common"
)

// TextExtractor is Stage 1: document file -> plain text, pages pre-joined in
// document order with a line-break separator.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text   string
	Pages  int
	Method string // "pdf-text" | "plain-text"
}

// ForPath selects an extractor by file extension.
func ForPath(path string) (TextExtractor, error) {
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "pdf":
		return PDFExtractor{}, nil
	case "txt":
		return PlainTextExtractor{}, nil
	default:
		return nil, common.NewAppError("UNSUPPORTED_FORMAT", path, common.ErrUnsupported)
	}
}
