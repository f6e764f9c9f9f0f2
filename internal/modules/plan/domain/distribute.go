package domain

import (
	"fmt"
	"math"
)

// Distribute lays the intake lessons out across the grid.
//
// Lessons keep their input order and each appears exactly once. Chapter
// sizes follow cumulative rounding of the per-chapter target, so a
// fractional target yields sizes that differ by at most one and sum to
// the rounded total. Chapters left short of their quota are padded with
// synthetic practice sessions, and no chapter ends up empty.
func Distribute(lessons []Item, grid Grid) (Syllabus, error) {
	if err := grid.Validate(); err != nil {
		return Syllabus{}, err
	}

	totalChapters := grid.Weeks * grid.ChaptersPerWeek
	target := grid.TargetPerChapter
	if target == 0 {
		target = float64(len(lessons)) / float64(totalChapters)
	}

	quotas := chapterQuotas(target, totalChapters)
	absorbOverflow(quotas, len(lessons))

	syllabus := Syllabus{Weeks: make([]Week, grid.Weeks)}
	cursor := 0
	for w := 0; w < grid.Weeks; w++ {
		week := Week{Number: grid.FirstWeek + w}
		for c := 0; c < grid.ChaptersPerWeek; c++ {
			quota := quotas[w*grid.ChaptersPerWeek+c]
			chapter := Chapter{
				Number: fmt.Sprintf("%d.%d", week.Number, c+1),
			}
			chapter.Items = append(chapter.Items, copyItems(grid.Frame.ChapterOpeners)...)
			placed := 0
			for ; placed < quota && cursor < len(lessons); placed++ {
				chapter.Items = append(chapter.Items, lessons[cursor])
				cursor++
			}
			// Pad to quota with practice, and never leave a chapter
			// without at least one non-structural item.
			for ; placed < quota || placed == 0; placed++ {
				chapter.Items = append(chapter.Items, NewPracticeItem())
			}
			chapter.Items = append(chapter.Items, copyItems(grid.Frame.ChapterClosers)...)
			week.Chapters = append(week.Chapters, chapter)
		}
		if grid.Frame.Review.Enabled {
			week.Chapters = append(week.Chapters, Chapter{
				Number: fmt.Sprintf("%d.%d", week.Number, grid.ChaptersPerWeek+1),
				Title:  grid.reviewChapterTitle(),
				Items:  grid.reviewItemsFor(w),
				Review: true,
			})
		}
		syllabus.Weeks[w] = week
	}
	return syllabus, nil
}

// chapterQuotas spreads a fractional target over n chapters via
// cumulative rounding: quota i is round(t*(i+1)) - round(t*i). Ties
// round up, so a target of 1.4 over 5 chapters yields 1,2,1,2,1.
func chapterQuotas(target float64, n int) []int {
	quotas := make([]int, n)
	prev := 0
	for i := 0; i < n; i++ {
		next := roundHalfUp(target * float64(i+1))
		quotas[i] = next - prev
		prev = next
	}
	return quotas
}

// absorbOverflow grows quotas until they can hold every lesson. Extra
// slots are added one at a time starting from the last chapter and
// walking backwards, cycling if a single pass is not enough.
func absorbOverflow(quotas []int, lessonCount int) {
	total := 0
	for _, q := range quotas {
		total += q
	}
	for k := 0; total < lessonCount; k++ {
		quotas[len(quotas)-1-(k%len(quotas))]++
		total++
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
