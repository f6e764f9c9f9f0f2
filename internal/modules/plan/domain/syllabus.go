package domain

// Chapter groups the items a learner works through in one sitting.
// Number is rendered as "week.chapter", e.g. "3.2".
type Chapter struct {
	Number string `json:"number"`
	Title  string `json:"title,omitempty"`
	Goals  string `json:"goals,omitempty"`
	Items  []Item `json:"items"`
	Review bool   `json:"review,omitempty"`
}

// Week is one row of the course grid.
type Week struct {
	Number       int       `json:"number"`
	LearningGoal string    `json:"learning_goal,omitempty"`
	Chapters     []Chapter `json:"chapters"`
}

// Syllabus is a fully laid out course plan.
type Syllabus struct {
	Weeks []Week `json:"weeks"`
}

// Minutes sums the estimated duration of every item in the week.
func (w Week) Minutes() int {
	total := 0
	for _, ch := range w.Chapters {
		for _, it := range ch.Items {
			total += it.Minutes
		}
	}
	return total
}

// Minutes sums the estimated duration of the whole plan.
func (s Syllabus) Minutes() int {
	total := 0
	for _, w := range s.Weeks {
		total += w.Minutes()
	}
	return total
}

// IntakeItems returns the non-synthetic, non-structural items in
// traversal order. These are exactly the lessons the planner was given.
func (s Syllabus) IntakeItems() []Item {
	var out []Item
	for _, w := range s.Weeks {
		for _, ch := range w.Chapters {
			for _, it := range ch.Items {
				if it.Synthetic || it.Structural {
					continue
				}
				out = append(out, it)
			}
		}
	}
	return out
}

func copyItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
