package service

import (
	"courseforge/internal/modules/plan/domain"
)

// GridSpec is the user-facing description of a course shape, before it
// is lowered to a distribution grid.
type GridSpec struct {
	Weeks                  int
	ChaptersPerWeek        int
	TargetPerChapter       float64
	FirstWeek              int
	WeeklyMinutes          int
	SyncSessionsPerChapter int
	WeeklyReview           bool
	SharedReview           bool
}

// PlanService turns grid specs and lesson lists into finished syllabi.
type PlanService struct{}

func NewPlanService() *PlanService {
	return &PlanService{}
}

// Plan distributes the lessons, estimates durations, and scales each
// week to the requested minute budget when one is set.
func (s *PlanService) Plan(lessons []domain.Item, spec GridSpec) (domain.Snapshot, error) {
	grid := s.lowerGrid(spec)
	syllabus, err := domain.Distribute(lessons, grid)
	if err != nil {
		return domain.Snapshot{}, err
	}
	domain.ApplyEstimates(&syllabus)
	if spec.WeeklyMinutes > 0 {
		for wi := range syllabus.Weeks {
			domain.ScaleWeekToTarget(&syllabus.Weeks[wi], spec.WeeklyMinutes)
		}
	}
	return domain.Snapshot{Grid: grid, Syllabus: syllabus}, nil
}

// Replan rebuilds a plan from fresh lessons using a snapshot's grid.
func (s *PlanService) Replan(lessons []domain.Item, grid domain.Grid) (domain.Snapshot, error) {
	syllabus, err := domain.Distribute(lessons, grid)
	if err != nil {
		return domain.Snapshot{}, err
	}
	domain.ApplyEstimates(&syllabus)
	return domain.Snapshot{Grid: grid, Syllabus: syllabus}, nil
}

func (s *PlanService) lowerGrid(spec GridSpec) domain.Grid {
	grid := domain.Grid{
		Weeks:            spec.Weeks,
		ChaptersPerWeek:  spec.ChaptersPerWeek,
		TargetPerChapter: spec.TargetPerChapter,
		FirstWeek:        spec.FirstWeek,
	}
	for i := 0; i < spec.SyncSessionsPerChapter; i++ {
		grid.Frame.ChapterClosers = append(grid.Frame.ChapterClosers, domain.NewSyncItem())
	}
	if spec.WeeklyReview {
		grid.Frame.Review = domain.ReviewConfig{
			Enabled:         true,
			SameForAllWeeks: spec.SharedReview,
			Shared:          []domain.Item{domain.NewReviewItem()},
		}
		if !spec.SharedReview {
			grid.Frame.Review.PerWeek = make([][]domain.Item, spec.Weeks)
			for w := range grid.Frame.Review.PerWeek {
				grid.Frame.Review.PerWeek[w] = []domain.Item{domain.NewReviewItem()}
			}
		}
	}
	return grid
}
