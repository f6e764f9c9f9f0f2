package domain

// ItemKind classifies a syllabus entry by how learners engage with it.
type ItemKind string

const (
	KindLesson     ItemKind = "lesson"
	KindExercise   ItemKind = "exercise"
	KindAssessment ItemKind = "assessment"
	KindSync       ItemKind = "sync"
)

// Item is a single row in a chapter: a lesson, a practice session, an
// assessment, or a live sync slot.
type Item struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Minutes     int      `json:"minutes"`
	Kind        ItemKind `json:"kind"`

	// Synthetic marks items the planner invented to meet a chapter's
	// quota rather than items taken from the intake list.
	Synthetic bool `json:"synthetic,omitempty"`

	// Structural marks frame items (openers, closers, review content)
	// that exist in every generated plan regardless of intake.
	Structural bool `json:"structural,omitempty"`
}

const (
	practiceTitle = "Practice Session"
	syncTitle     = "Sync Session: Q&A"
	reviewTitle   = "Weekly Review"
)

// NewPracticeItem builds the synthetic filler item used when a chapter
// has more slots than intake lessons.
func NewPracticeItem() Item {
	return Item{
		Title:     practiceTitle,
		Minutes:   EstimateMinutes(practiceTitle),
		Kind:      KindExercise,
		Synthetic: true,
	}
}

// NewSyncItem builds the live Q&A slot appended to chapters.
func NewSyncItem() Item {
	return Item{
		Title:      syncTitle,
		Minutes:    EstimateMinutes(syncTitle),
		Kind:       KindSync,
		Structural: true,
	}
}

// NewReviewItem builds the default content of a weekly review chapter.
func NewReviewItem() Item {
	return Item{
		Title:      reviewTitle,
		Minutes:    EstimateMinutes(reviewTitle),
		Kind:       KindAssessment,
		Structural: true,
	}
}
