package domain

import (
	"fmt"

	apperrors "courseforge/internal/platform/errors"
)

// Grid describes the shape a syllabus is distributed into.
type Grid struct {
	Weeks           int
	ChaptersPerWeek int

	// TargetPerChapter is the desired intake lessons per chapter.
	// Zero means derive it from the intake size.
	TargetPerChapter float64

	// FirstWeek offsets week numbering, for courses that continue an
	// earlier term.
	FirstWeek int

	Frame FrameConfig
}

// FrameConfig carries the structural items wrapped around the
// distributed lessons.
type FrameConfig struct {
	ChapterOpeners []Item
	ChapterClosers []Item
	Review         ReviewConfig
}

// ReviewConfig controls the per-week review chapter.
type ReviewConfig struct {
	Enabled bool

	// SameForAllWeeks selects Shared for every week; otherwise PerWeek
	// supplies one item list per week.
	SameForAllWeeks bool
	Shared          []Item
	PerWeek         [][]Item

	ChapterTitle string
}

func (g Grid) Validate() error {
	if g.Weeks < 1 {
		return fmt.Errorf("%w: weeks must be at least 1, got %d", apperrors.ErrInvalidConfiguration, g.Weeks)
	}
	if g.ChaptersPerWeek < 1 {
		return fmt.Errorf("%w: chapters per week must be at least 1, got %d", apperrors.ErrInvalidConfiguration, g.ChaptersPerWeek)
	}
	if g.TargetPerChapter < 0 {
		return fmt.Errorf("%w: target per chapter must not be negative, got %g", apperrors.ErrInvalidConfiguration, g.TargetPerChapter)
	}
	if g.TargetPerChapter > 0 && roundHalfUp(g.TargetPerChapter*float64(g.Weeks*g.ChaptersPerWeek)) == 0 {
		return fmt.Errorf("%w: target %g over %d chapters rounds to zero capacity",
			apperrors.ErrInvalidConfiguration, g.TargetPerChapter, g.Weeks*g.ChaptersPerWeek)
	}
	if g.FirstWeek < 1 {
		return fmt.Errorf("%w: first week must be at least 1, got %d", apperrors.ErrInvalidConfiguration, g.FirstWeek)
	}
	if g.Frame.Review.Enabled && !g.Frame.Review.SameForAllWeeks && len(g.Frame.Review.PerWeek) != g.Weeks {
		return fmt.Errorf("%w: per-week review needs %d item lists, got %d",
			apperrors.ErrInvalidConfiguration, g.Weeks, len(g.Frame.Review.PerWeek))
	}
	return nil
}

// reviewItemsFor returns a fresh copy of the review content for the
// given week index. Copying keeps later per-week edits independent.
func (g Grid) reviewItemsFor(week int) []Item {
	var src []Item
	if g.Frame.Review.SameForAllWeeks {
		src = g.Frame.Review.Shared
	} else {
		src = g.Frame.Review.PerWeek[week]
	}
	if len(src) == 0 {
		return []Item{NewReviewItem()}
	}
	return copyItems(src)
}

func (g Grid) reviewChapterTitle() string {
	if g.Frame.Review.ChapterTitle != "" {
		return g.Frame.Review.ChapterTitle
	}
	return reviewTitle
}
