package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "courseforge/internal/platform/errors"
)

// Worksheet layout. One row per lesson; week and chapter cells are
// written on the first row of their group and merged downward.

var SheetHeaders = []string{
	"Week", "Learning Goal of the week", "Chapter number",
	"Chapter learning goals", "Chapter title", "", "Lesson title",
	"Time to complete", "Mastery Outcome",
}

var SheetColumnWidths = []float64{8, 50, 15, 40, 25, 5, 35, 15, 50}

// Row is one worksheet line, header excluded. Empty strings mean the
// cell belongs to a merged group above it.
type Row struct {
	Week          string
	WeekGoal      string
	ChapterNumber string
	ChapterGoals  string
	ChapterTitle  string
	LessonTitle   string
	Minutes       string
	Outcome       string
}

// Merge is an inclusive vertical cell range, rows counted from 1 with
// the header at row 1.
type Merge struct {
	Column  string
	FromRow int
	ToRow   int
}

// BuildRows flattens the course into worksheet rows and the merge
// ranges for the grouped week and chapter columns.
func BuildRows(course Course) ([]Row, []Merge) {
	var rows []Row
	var merges []Merge
	rowNum := 1

	for _, week := range course.Weeks {
		weekStart := rowNum + 1
		for _, ch := range week.Chapters {
			chapterStart := rowNum + 1
			for i, lesson := range ch.Lessons {
				row := Row{
					LessonTitle: lesson.Title,
					Minutes:     strconv.Itoa(lesson.Minutes),
					Outcome:     lesson.Outcomes,
				}
				if i == 0 {
					row.ChapterNumber = ch.Number
					row.ChapterGoals = ch.Goals
					row.ChapterTitle = ch.Title
				}
				if rowNum+1 == weekStart && i == 0 {
					row.Week = strconv.Itoa(week.Number)
					row.WeekGoal = week.LearningGoal
				}
				rows = append(rows, row)
				rowNum++
			}
			if chapterStart < rowNum {
				merges = append(merges,
					Merge{Column: "C", FromRow: chapterStart, ToRow: rowNum},
					Merge{Column: "D", FromRow: chapterStart, ToRow: rowNum},
					Merge{Column: "E", FromRow: chapterStart, ToRow: rowNum},
				)
			}
		}
		if weekStart < rowNum {
			merges = append(merges,
				Merge{Column: "A", FromRow: weekStart, ToRow: rowNum},
				Merge{Column: "B", FromRow: weekStart, ToRow: rowNum},
			)
		}
	}
	return rows, merges
}

// ParseRows rebuilds weeks from raw worksheet cells, header included.
// Week and chapter values carry forward across their merged rows, the
// way a reader sees the sheet.
func ParseRows(cells [][]string) ([]Week, error) {
	var weeks []Week
	var currentWeek *Week
	var currentChapter *Chapter

	for rowIdx, row := range cells {
		if rowIdx == 0 {
			continue
		}
		get := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}
		lessonTitle := get(6)
		if lessonTitle == "" {
			continue
		}

		if weekCell := get(0); weekCell != "" {
			num, err := parseExcelInt(weekCell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d has invalid week number %q",
					apperrors.ErrInvalidConfiguration, rowIdx+1, weekCell)
			}
			weeks = append(weeks, Week{Number: num, LearningGoal: get(1)})
			currentWeek = &weeks[len(weeks)-1]
			currentChapter = nil
		}
		if currentWeek == nil {
			return nil, fmt.Errorf("%w: row %d has a lesson before any week",
				apperrors.ErrInvalidConfiguration, rowIdx+1)
		}

		if chapterCell := get(2); chapterCell != "" {
			currentWeek.Chapters = append(currentWeek.Chapters, Chapter{
				Number: chapterCell,
				Goals:  get(3),
				Title:  get(4),
			})
			currentChapter = &currentWeek.Chapters[len(currentWeek.Chapters)-1]
		}
		if currentChapter == nil {
			return nil, fmt.Errorf("%w: row %d has a lesson before any chapter",
				apperrors.ErrInvalidConfiguration, rowIdx+1)
		}

		minutes := 0
		if m := get(7); m != "" {
			parsed, err := parseExcelInt(m)
			if err == nil {
				minutes = parsed
			}
		}
		currentChapter.Lessons = append(currentChapter.Lessons, Lesson{
			Title:    lessonTitle,
			Minutes:  minutes,
			Outcomes: get(8),
		})
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("%w: worksheet has no lesson rows", apperrors.ErrInvalidConfiguration)
	}
	return weeks, nil
}

// parseExcelInt tolerates the float rendering spreadsheets give to
// integer cells ("3.0").
func parseExcelInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
