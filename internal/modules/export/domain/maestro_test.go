package domain

import (
	"reflect"
	"testing"
)

func exportCourse() Course {
	return Course{
		Title:     "Go Basics",
		TrackType: "Programming",
		Weeks: []Week{
			{
				Number:       1,
				LearningGoal: "Foundations: learn the core syntax",
				Chapters: []Chapter{
					{
						Number: "1.1",
						Title:  "Getting Started",
						Lessons: []Lesson{
							{Title: "Variables", Minutes: 45, Outcomes: "declare variables; explain zero values"},
							{Title: "Practice Session", Minutes: 60},
							{Title: "Sync Session: Q&A", Minutes: 90},
						},
					},
					{
						Number: "1.2",
						Title:  "Weekly Review",
						Lessons: []Lesson{
							{Title: "Weekly Review", Minutes: 120},
						},
					},
				},
			},
		},
	}
}

func TestBuildMaestroShape(t *testing.T) {
	t.Parallel()

	doc := BuildMaestro(exportCourse(), "2026-03-01")
	if doc.Version != 1 || doc.TrackType != "Programming" {
		t.Fatalf("doc header = %+v", doc)
	}
	if len(doc.Terms) != 1 || len(doc.Terms[0].Courses) != 1 {
		t.Fatalf("terms = %+v", doc.Terms)
	}
	course := doc.Terms[0].Courses[0]
	if course.DurationInWeeks != 1 {
		t.Fatalf("duration = %d", course.DurationInWeeks)
	}
	if len(course.Units) != 1 {
		t.Fatalf("units = %+v", course.Units)
	}
}

func TestBuildMaestroSkipsStructuralLessons(t *testing.T) {
	t.Parallel()

	doc := BuildMaestro(exportCourse(), "2026-03-01")
	lessons := doc.Terms[0].Courses[0].Units[0].Lessons
	if len(lessons) != 2 {
		t.Fatalf("lessons = %+v", lessons)
	}
	for _, l := range lessons {
		if l.Title == "Sync Session: Q&A" || l.Title == "Weekly Review" {
			t.Fatalf("structural lesson leaked into export: %q", l.Title)
		}
	}
}

func TestBuildMaestroPracticePrefixAndInstructions(t *testing.T) {
	t.Parallel()

	doc := BuildMaestro(exportCourse(), "2026-03-01")
	lessons := doc.Terms[0].Courses[0].Units[0].Lessons
	practice := lessons[1]
	if practice.Title != "⚙ Practice Session" {
		t.Fatalf("practice title = %q", practice.Title)
	}
	if practice.TeachingInstructions == "" {
		t.Fatal("practice session has no teaching instructions")
	}
	if lessons[0].TeachingInstructions != "" {
		t.Fatalf("regular lesson got instructions: %q", lessons[0].TeachingInstructions)
	}
}

func TestBuildMaestroSplitsOutcomes(t *testing.T) {
	t.Parallel()

	doc := BuildMaestro(exportCourse(), "2026-03-01")
	got := doc.Terms[0].Courses[0].Units[0].Lessons[0].MasteryOutcomes
	want := []string{"declare variables", "explain zero values"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("outcomes = %v, want %v", got, want)
	}
}

func TestUnitTitleBeforeColon(t *testing.T) {
	t.Parallel()

	doc := BuildMaestro(exportCourse(), "2026-03-01")
	if got := doc.Terms[0].Courses[0].Units[0].Title; got != "Foundations" {
		t.Fatalf("unit title = %q", got)
	}
}

func TestUnitTitleFallback(t *testing.T) {
	t.Parallel()

	course := exportCourse()
	course.Weeks[0].LearningGoal = ""
	doc := BuildMaestro(course, "2026-03-01")
	if got := doc.Terms[0].Courses[0].Units[0].Title; got != "WEEK 1" {
		t.Fatalf("unit title = %q", got)
	}
}

func TestEveryLessonGetsRequiredPlugins(t *testing.T) {
	t.Parallel()

	doc := BuildMaestro(exportCourse(), "2026-03-01")
	for _, l := range doc.Terms[0].Courses[0].Units[0].Lessons {
		if !reflect.DeepEqual(l.RequiredPlugins, []string{"code-editor"}) {
			t.Fatalf("required plugins = %v", l.RequiredPlugins)
		}
	}
}
