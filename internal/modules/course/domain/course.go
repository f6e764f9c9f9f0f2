package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "courseforge/internal/platform/errors"
)

// Lesson is a single teachable unit in course order.
type Lesson struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Minutes     int    `yaml:"minutes,omitempty" json:"minutes,omitempty"`
}

// Course is the source of truth the planner draws lessons from.
type Course struct {
	Slug        string
	Title       string
	Description string
	TrackType   string
	Lessons     []Lesson
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Course) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: course title is required", apperrors.ErrInvalidConfiguration)
	}
	if c.Slug == "" {
		return fmt.Errorf("%w: course slug is required", apperrors.ErrInvalidConfiguration)
	}
	for i, l := range c.Lessons {
		if strings.TrimSpace(l.Title) == "" {
			return fmt.Errorf("%w: lesson %d has no title", apperrors.ErrInvalidConfiguration, i+1)
		}
		if l.Minutes < 0 {
			return fmt.Errorf("%w: lesson %q has negative minutes", apperrors.ErrInvalidConfiguration, l.Title)
		}
	}
	return nil
}

// Summary is the row the query index keeps per course.
type Summary struct {
	Slug        string
	Title       string
	TrackType   string
	LessonCount int
	UpdatedAt   time.Time
}
