package domain

// Decoration carries generated prose to merge into a syllabus.
// WeekGoals is keyed by week number; Chapters and PracticeNotes are
// keyed by chapter number.
type Decoration struct {
	WeekGoals     map[int]string
	Chapters      map[string]ChapterDecoration
	PracticeNotes map[string]string
}

type ChapterDecoration struct {
	Title string
	Goals string
}

// Apply merges the decoration in place. Unknown keys are ignored and
// untouched fields keep their values, so decorations compose.
func (s *Syllabus) Apply(d Decoration) {
	for wi := range s.Weeks {
		week := &s.Weeks[wi]
		if goal, ok := d.WeekGoals[week.Number]; ok {
			week.LearningGoal = goal
		}
		for ci := range week.Chapters {
			ch := &week.Chapters[ci]
			if deco, ok := d.Chapters[ch.Number]; ok {
				if deco.Title != "" {
					ch.Title = deco.Title
				}
				if deco.Goals != "" {
					ch.Goals = deco.Goals
				}
			}
			note, ok := d.PracticeNotes[ch.Number]
			if !ok {
				continue
			}
			for ii := range ch.Items {
				if ch.Items[ii].Synthetic && ch.Items[ii].Kind == KindExercise {
					ch.Items[ii].Description = note
				}
			}
		}
	}
}
