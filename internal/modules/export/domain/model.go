package domain

// The export model is a flattened view of a plan, detached from how
// the planner represents it internally.

type Lesson struct {
	Title    string
	Minutes  int
	Outcomes string
	Practice bool
}

type Chapter struct {
	Number  string
	Title   string
	Goals   string
	Lessons []Lesson
}

type Week struct {
	Number       int
	LearningGoal string
	Chapters     []Chapter
}

type Course struct {
	Title       string
	Description string
	TrackType   string
	Weeks       []Week
}
