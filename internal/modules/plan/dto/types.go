package dto

import (
	"time"

	"courseforge/internal/modules/plan/domain"
)

// Summary is one row of the plan list view.
type Summary struct {
	CourseSlug  string    `json:"course_slug"`
	Weeks       int       `json:"weeks"`
	Items       int       `json:"items"`
	Minutes     int       `json:"minutes"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Plan is the cross-module view of a generated syllabus.
type Plan struct {
	CourseSlug string `json:"course_slug"`
	Weeks      []Week `json:"weeks"`
	Minutes    int    `json:"minutes"`
}

type Week struct {
	Number       int       `json:"number"`
	LearningGoal string    `json:"learning_goal,omitempty"`
	Chapters     []Chapter `json:"chapters"`
}

type Chapter struct {
	Number string `json:"number"`
	Title  string `json:"title,omitempty"`
	Goals  string `json:"goals,omitempty"`
	Review bool   `json:"review,omitempty"`
	Items  []Item `json:"items"`
}

type Item struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Minutes     int    `json:"minutes"`
	Kind        string `json:"kind"`
	Synthetic   bool   `json:"synthetic,omitempty"`
	Structural  bool   `json:"structural,omitempty"`
}

func FromSyllabus(slug string, s domain.Syllabus) Plan {
	plan := Plan{CourseSlug: slug, Minutes: s.Minutes()}
	for _, w := range s.Weeks {
		week := Week{Number: w.Number, LearningGoal: w.LearningGoal}
		for _, ch := range w.Chapters {
			chapter := Chapter{
				Number: ch.Number,
				Title:  ch.Title,
				Goals:  ch.Goals,
				Review: ch.Review,
			}
			for _, it := range ch.Items {
				chapter.Items = append(chapter.Items, Item{
					Title:       it.Title,
					Description: it.Description,
					Minutes:     it.Minutes,
					Kind:        string(it.Kind),
					Synthetic:   it.Synthetic,
					Structural:  it.Structural,
				})
			}
			week.Chapters = append(week.Chapters, chapter)
		}
		plan.Weeks = append(plan.Weeks, week)
	}
	return plan
}
