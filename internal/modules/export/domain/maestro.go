package domain

import (
	"strconv"
	"strings"
)

// Maestro JSON document shape, version 1. Field order and naming
// follow the platform's import format.

const (
	maestroVersion   = 1
	defaultTrackType = "Programming"

	practiceKeyword = "practice session"
	practicePrefix  = "⚙ "

	practiceInstructions = "Practice-oriented session with a real world story and theme; " +
		"Create a step by step exercise; " +
		"Don't teach any new topics, rely only on the lessons covered"
)

// Structural lessons are never imported; learners meet them outside
// the platform.
var skipLessonKeywords = []string{"Sync Session", "Weekly Review"}

var defaultRequiredPlugins = []string{"code-editor"}

type MaestroDocument struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ModifiedAt  string        `json:"modifiedAt"`
	CreatedAt   string        `json:"createdAt"`
	IsPublished bool          `json:"isPublished"`
	TrackType   string        `json:"trackType"`
	Version     int           `json:"version"`
	Terms       []MaestroTerm `json:"terms"`
}

type MaestroTerm struct {
	Courses []MaestroCourse `json:"courses"`
}

type MaestroCourse struct {
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	DisplayID            string        `json:"displayId"`
	Credits              int           `json:"credits"`
	Units                []MaestroUnit `json:"units"`
	Label                string        `json:"label"`
	TeachingInstructions string        `json:"teachingInstructions"`
	DurationInWeeks      int           `json:"durationInWeeks"`
	IsPublished          bool          `json:"isPublished"`
}

type MaestroUnit struct {
	Title   string          `json:"title"`
	Lessons []MaestroLesson `json:"lessons"`
}

type MaestroLesson struct {
	Title                string   `json:"title"`
	MasteryOutcomes      []string `json:"masteryOutcomes"`
	TeachingInstructions string   `json:"teachingInstructions"`
	RequiredPlugins      []string `json:"requiredPlugins"`
}

// BuildMaestro converts a course into the import document. Sync and
// review sessions are dropped, practice sessions get a gear prefix and
// canned teaching instructions, and semicolon-separated outcomes are
// split into a list.
func BuildMaestro(course Course, createdAt string) MaestroDocument {
	units := make([]MaestroUnit, 0, len(course.Weeks))
	for _, week := range course.Weeks {
		units = append(units, buildUnit(week))
	}

	trackType := course.TrackType
	if trackType == "" {
		trackType = defaultTrackType
	}
	return MaestroDocument{
		Title:       course.Title,
		Description: course.Description,
		CreatedAt:   createdAt,
		TrackType:   trackType,
		Version:     maestroVersion,
		Terms: []MaestroTerm{{
			Courses: []MaestroCourse{{
				Title:           course.Title,
				Description:     course.Description,
				Units:           units,
				DurationInWeeks: len(course.Weeks),
			}},
		}},
	}
}

func buildUnit(week Week) MaestroUnit {
	unit := MaestroUnit{
		Title:   unitTitle(week),
		Lessons: []MaestroLesson{},
	}
	for _, ch := range week.Chapters {
		for _, lesson := range ch.Lessons {
			if shouldSkipLesson(lesson.Title) {
				continue
			}
			title := applyLessonPrefix(lesson.Title)
			instructions := ""
			if isPracticeSession(title) {
				instructions = practiceInstructions
			}
			unit.Lessons = append(unit.Lessons, MaestroLesson{
				Title:                title,
				MasteryOutcomes:      splitOutcomes(lesson.Outcomes),
				TeachingInstructions: instructions,
				RequiredPlugins:      append([]string(nil), defaultRequiredPlugins...),
			})
		}
	}
	return unit
}

// unitTitle takes the part of the learning goal before the colon,
// falling back to a plain week label.
func unitTitle(week Week) string {
	title := week.LearningGoal
	if idx := strings.Index(title, ":"); idx >= 0 {
		title = title[:idx]
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "WEEK " + strconv.Itoa(week.Number)
	}
	return title
}

func shouldSkipLesson(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range skipLessonKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func isPracticeSession(title string) bool {
	return strings.Contains(strings.ToLower(title), practiceKeyword)
}

func applyLessonPrefix(title string) string {
	if strings.HasPrefix(title, "Practice Session") {
		return practicePrefix + title
	}
	return title
}

func splitOutcomes(outcomes string) []string {
	if strings.TrimSpace(outcomes) == "" {
		return []string{}
	}
	parts := strings.Split(outcomes, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
