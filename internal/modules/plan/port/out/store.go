package out

import (
	"context"

	"courseforge/internal/modules/plan/domain"
)

// SnapshotStore persists generated plans, one snapshot per course.
type SnapshotStore interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Load(ctx context.Context, courseSlug string) (domain.Snapshot, error)
	Delete(ctx context.Context, courseSlug string) error
}

// Projector mirrors a plan into the query index and serves the
// summaries the list views read.
type Projector interface {
	ProjectPlan(ctx context.Context, snap domain.Snapshot) error
	DropPlan(ctx context.Context, courseSlug string) error
	Summaries(ctx context.Context) ([]domain.PlanSummary, error)
}
