package out

import "context"

// TextExtractor pulls plain text out of a binary document format.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
