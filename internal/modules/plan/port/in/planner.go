package in

import (
	"context"

	"courseforge/internal/modules/plan/dto"
)

// GenerateCommand describes the shape of the plan to build for a
// course. Zero TargetPerChapter derives the target from the number of
// lessons.
type GenerateCommand struct {
	CourseSlug             string
	Weeks                  int
	ChaptersPerWeek        int
	TargetPerChapter       float64
	FirstWeek              int
	WeeklyMinutes          int
	SyncSessionsPerChapter int
	WeeklyReview           bool
	SharedReview           bool
}

// Decoration carries generated prose to merge into an existing plan.
// Keys of Chapters and PracticeNotes are chapter numbers ("2.3").
type Decoration struct {
	WeekGoals     map[int]string
	Chapters      map[string]ChapterDecoration
	PracticeNotes map[string]string
}

type ChapterDecoration struct {
	Title string
	Goals string
}

// Planner is the plan module's inbound surface.
type Planner interface {
	Generate(ctx context.Context, cmd GenerateCommand) (dto.Plan, error)
	Regenerate(ctx context.Context, courseSlug string) (dto.Plan, error)
	Get(ctx context.Context, courseSlug string) (dto.Plan, error)
	List(ctx context.Context) ([]dto.Summary, error)
	Decorate(ctx context.Context, courseSlug string, d Decoration) (dto.Plan, error)
	Delete(ctx context.Context, courseSlug string) error
}
