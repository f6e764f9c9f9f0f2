package dto

// Lesson is a parsed intake entry handed to other modules.
type Lesson struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Minutes     int    `json:"minutes,omitempty"`
}
