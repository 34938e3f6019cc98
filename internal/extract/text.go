package extract

import (
	"context"
	"fmt"
	"os"
)

// PlainTextExtractor passes through pre-extracted text files.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read text file %s: %w", path, err)
	}
	return TextExtractionResult{
		Text:   string(b),
		Pages:  1,
		Method: "plain-text",
	}, nil
}
