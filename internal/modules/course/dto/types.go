package dto

import "time"

// Course is the cross-module view of a course.
type Course struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TrackType   string    `json:"track_type"`
	LessonCount int       `json:"lesson_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Lesson is one intake lesson in course order.
type Lesson struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Minutes     int    `json:"minutes,omitempty"`
}

// CreateCommand creates a course, optionally seeding its lessons from
// an intake file. IntakeFormat overrides outline syntax detection.
type CreateCommand struct {
	Title        string
	Description  string
	TrackType    string
	IntakePath   string
	IntakeFormat string
}
