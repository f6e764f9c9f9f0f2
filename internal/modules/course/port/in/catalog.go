package in

import (
	"context"

	"courseforge/internal/modules/course/dto"
)

// Catalog is the course module's inbound surface.
type Catalog interface {
	Create(ctx context.Context, cmd dto.CreateCommand) (dto.Course, error)
	Get(ctx context.Context, slug string) (dto.Course, error)
	List(ctx context.Context) ([]dto.Course, error)
	Lessons(ctx context.Context, slug string) ([]dto.Lesson, error)
	Delete(ctx context.Context, slug string) error

	// Reindex rebuilds the query index from the markdown files and
	// returns the number of courses projected.
	Reindex(ctx context.Context) (int, error)
}
