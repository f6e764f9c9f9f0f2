package in

import (
	"context"

	"courseforge/internal/modules/intake/dto"
)

// Intake parses lesson lists out of outline documents.
type Intake interface {
	// ParseFile reads an outline from disk, choosing the reader by
	// file extension (.pdf, .md, .txt). Format overrides detection of
	// the lesson list syntax; empty means sniff the content.
	ParseFile(ctx context.Context, path, format string) ([]dto.Lesson, error)
}
