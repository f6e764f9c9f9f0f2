package out

import (
	"context"

	"courseforge/internal/modules/export/domain"
)

// Workbook reads and writes the spreadsheet rendition of a course.
type Workbook interface {
	Write(ctx context.Context, path string, course domain.Course) error
	Read(ctx context.Context, path string) ([][]string, error)
}

// DocumentStore writes export documents to disk.
type DocumentStore interface {
	WriteJSON(ctx context.Context, path string, doc any) error
}
