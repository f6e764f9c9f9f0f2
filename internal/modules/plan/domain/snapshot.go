package domain

import "time"

// Snapshot is a persisted plan together with the grid that produced
// it, so a course can be replanned with the same shape after its
// lessons change.
type Snapshot struct {
	CourseSlug  string    `json:"course_slug"`
	GeneratedAt time.Time `json:"generated_at"`
	Grid        Grid      `json:"grid"`
	Syllabus    Syllabus  `json:"syllabus"`
}

// PlanSummary is the row the query index keeps per plan.
type PlanSummary struct {
	CourseSlug  string
	Weeks       int
	Items       int
	Minutes     int
	GeneratedAt time.Time
}
