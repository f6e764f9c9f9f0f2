package out

import (
	"context"

	"courseforge/internal/modules/course/domain"
)

// CourseStore persists courses as markdown files.
type CourseStore interface {
	Save(ctx context.Context, c domain.Course) error
	Load(ctx context.Context, slug string) (domain.Course, error)
	LoadAll(ctx context.Context) ([]domain.Course, error)
	Delete(ctx context.Context, slug string) error
}

// Projector mirrors courses into the query index.
type Projector interface {
	ProjectCourse(ctx context.Context, c domain.Course) error
	DropCourse(ctx context.Context, slug string) error
	Summaries(ctx context.Context) ([]domain.Summary, error)
}
