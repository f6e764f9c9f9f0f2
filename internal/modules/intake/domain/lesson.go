package domain

// Lesson is a parsed intake entry, before it becomes part of a course.
type Lesson struct {
	Title       string
	Description string
	Minutes     int
}
