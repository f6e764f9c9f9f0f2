package domain

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	apperrors "courseforge/internal/platform/errors"
)

func makeLessons(n int) []Item {
	lessons := make([]Item, n)
	for i := range lessons {
		lessons[i] = Item{
			Title:   fmt.Sprintf("Lesson %02d", i+1),
			Minutes: 45,
			Kind:    KindLesson,
		}
	}
	return lessons
}

func chapterSizes(s Syllabus) []int {
	var sizes []int
	for _, w := range s.Weeks {
		for _, ch := range w.Chapters {
			if ch.Review {
				continue
			}
			n := 0
			for _, it := range ch.Items {
				if !it.Structural {
					n++
				}
			}
			sizes = append(sizes, n)
		}
	}
	return sizes
}

func TestDistributeFractionalTarget(t *testing.T) {
	t.Parallel()

	s, err := Distribute(makeLessons(7), Grid{
		Weeks:            1,
		ChaptersPerWeek:  5,
		TargetPerChapter: 1.4,
		FirstWeek:        1,
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	want := []int{1, 2, 1, 2, 1}
	if got := chapterSizes(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("chapter sizes = %v, want %v", got, want)
	}
}

func TestDistributeConservesOrder(t *testing.T) {
	t.Parallel()

	lessons := makeLessons(23)
	s, err := Distribute(lessons, Grid{Weeks: 3, ChaptersPerWeek: 4, FirstWeek: 1})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	got := s.IntakeItems()
	if len(got) != len(lessons) {
		t.Fatalf("plan holds %d intake items, want %d", len(got), len(lessons))
	}
	for i := range lessons {
		if got[i].Title != lessons[i].Title {
			t.Fatalf("item %d = %q, want %q", i, got[i].Title, lessons[i].Title)
		}
	}
}

func TestDistributeSizesDifferByAtMostOne(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 5, 11, 17, 40, 97} {
		s, err := Distribute(makeLessons(n), Grid{Weeks: 4, ChaptersPerWeek: 3, FirstWeek: 1})
		if err != nil {
			t.Fatalf("Distribute(%d lessons): %v", n, err)
		}
		sizes := chapterSizes(s)
		min, max := sizes[0], sizes[0]
		for _, sz := range sizes {
			if sz < min {
				min = sz
			}
			if sz > max {
				max = sz
			}
		}
		if max-min > 1 {
			t.Fatalf("n=%d: sizes %v spread more than one", n, sizes)
		}
	}
}

func TestDistributeIsDeterministic(t *testing.T) {
	t.Parallel()

	grid := Grid{Weeks: 2, ChaptersPerWeek: 3, TargetPerChapter: 2.5, FirstWeek: 1}
	a, err := Distribute(makeLessons(13), grid)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := Distribute(makeLessons(13), grid)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs with identical input produced different plans")
	}
}

func TestDistributeFillsShortChaptersWithPractice(t *testing.T) {
	t.Parallel()

	s, err := Distribute(makeLessons(3), Grid{
		Weeks:            1,
		ChaptersPerWeek:  3,
		TargetPerChapter: 2,
		FirstWeek:        1,
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	want := []int{2, 2, 2}
	if got := chapterSizes(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("chapter sizes = %v, want %v", got, want)
	}

	synthetic := 0
	for _, ch := range s.Weeks[0].Chapters {
		for _, it := range ch.Items {
			if it.Synthetic {
				synthetic++
				if it.Kind != KindExercise {
					t.Fatalf("synthetic item kind = %q, want %q", it.Kind, KindExercise)
				}
			}
		}
	}
	if synthetic != 3 {
		t.Fatalf("synthetic items = %d, want 3", synthetic)
	}
}

func TestDistributeNeverLeavesChapterEmpty(t *testing.T) {
	t.Parallel()

	s, err := Distribute(makeLessons(2), Grid{Weeks: 2, ChaptersPerWeek: 4, FirstWeek: 1})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	for _, sz := range chapterSizes(s) {
		if sz == 0 {
			t.Fatalf("found empty chapter, sizes %v", chapterSizes(s))
		}
	}
}

func TestDistributeAbsorbsOverflowFromTheEnd(t *testing.T) {
	t.Parallel()

	// Explicit target of 1 over 4 chapters leaves 2 lessons over; they
	// land in the last chapters first.
	s, err := Distribute(makeLessons(6), Grid{
		Weeks:            1,
		ChaptersPerWeek:  4,
		TargetPerChapter: 1,
		FirstWeek:        1,
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	want := []int{1, 1, 2, 2}
	if got := chapterSizes(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("chapter sizes = %v, want %v", got, want)
	}
}

func TestDistributeWeekNumbering(t *testing.T) {
	t.Parallel()

	s, err := Distribute(makeLessons(8), Grid{Weeks: 2, ChaptersPerWeek: 2, FirstWeek: 5})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if s.Weeks[0].Number != 5 || s.Weeks[1].Number != 6 {
		t.Fatalf("week numbers = %d, %d; want 5, 6", s.Weeks[0].Number, s.Weeks[1].Number)
	}
	if got := s.Weeks[1].Chapters[1].Number; got != "6.2" {
		t.Fatalf("chapter number = %q, want %q", got, "6.2")
	}
}

func TestDistributeAppliesFrame(t *testing.T) {
	t.Parallel()

	s, err := Distribute(makeLessons(4), Grid{
		Weeks:           1,
		ChaptersPerWeek: 2,
		FirstWeek:       1,
		Frame: FrameConfig{
			ChapterClosers: []Item{NewSyncItem()},
		},
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	for _, ch := range s.Weeks[0].Chapters {
		last := ch.Items[len(ch.Items)-1]
		if !last.Structural || last.Kind != KindSync {
			t.Fatalf("chapter %s does not end with a sync closer: %+v", ch.Number, last)
		}
	}
}

func TestDistributeSharedReviewIsIndependentPerWeek(t *testing.T) {
	t.Parallel()

	s, err := Distribute(makeLessons(8), Grid{
		Weeks:           2,
		ChaptersPerWeek: 2,
		FirstWeek:       1,
		Frame: FrameConfig{
			Review: ReviewConfig{
				Enabled:         true,
				SameForAllWeeks: true,
				Shared:          []Item{NewReviewItem()},
			},
		},
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	for wi, w := range s.Weeks {
		last := w.Chapters[len(w.Chapters)-1]
		if !last.Review {
			t.Fatalf("week %d does not end with a review chapter", wi+1)
		}
		if last.Title != "Weekly Review" {
			t.Fatalf("review chapter title = %q", last.Title)
		}
	}

	// Mutating one week's review must not bleed into the other.
	s.Weeks[0].Chapters[2].Items[0].Minutes = 999
	if s.Weeks[1].Chapters[2].Items[0].Minutes == 999 {
		t.Fatal("review items are shared between weeks")
	}
}

func TestDistributePerWeekReview(t *testing.T) {
	t.Parallel()

	s, err := Distribute(makeLessons(4), Grid{
		Weeks:           2,
		ChaptersPerWeek: 1,
		FirstWeek:       1,
		Frame: FrameConfig{
			Review: ReviewConfig{
				Enabled: true,
				PerWeek: [][]Item{
					{{Title: "Recap A", Minutes: 30, Kind: KindAssessment, Structural: true}},
					{{Title: "Recap B", Minutes: 30, Kind: KindAssessment, Structural: true}},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if got := s.Weeks[0].Chapters[1].Items[0].Title; got != "Recap A" {
		t.Fatalf("week 1 review = %q, want %q", got, "Recap A")
	}
	if got := s.Weeks[1].Chapters[1].Items[0].Title; got != "Recap B" {
		t.Fatalf("week 2 review = %q, want %q", got, "Recap B")
	}
}

func TestDistributeRejectsBadGrids(t *testing.T) {
	t.Parallel()

	grids := []Grid{
		{Weeks: 0, ChaptersPerWeek: 3, FirstWeek: 1},
		{Weeks: 2, ChaptersPerWeek: 0, FirstWeek: 1},
		{Weeks: 2, ChaptersPerWeek: 3, TargetPerChapter: -1, FirstWeek: 1},
		{Weeks: 1, ChaptersPerWeek: 3, TargetPerChapter: 0.1, FirstWeek: 1},
		{Weeks: 2, ChaptersPerWeek: 3, FirstWeek: 0},
		{
			Weeks: 2, ChaptersPerWeek: 3, FirstWeek: 1,
			Frame: FrameConfig{Review: ReviewConfig{
				Enabled: true,
				PerWeek: [][]Item{{NewReviewItem()}},
			}},
		},
	}
	for i, g := range grids {
		if _, err := Distribute(makeLessons(5), g); !errors.Is(err, apperrors.ErrInvalidConfiguration) {
			t.Fatalf("grid %d: err = %v, want ErrInvalidConfiguration", i, err)
		}
	}
}

func TestChapterQuotasSumToRoundedTotal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		target float64
		n      int
		sum    int
	}{
		{1.4, 5, 7},
		{2.5, 4, 10},
		{0.3, 10, 3},
		{3, 6, 18},
	}
	for _, tc := range cases {
		quotas := chapterQuotas(tc.target, tc.n)
		sum := 0
		for _, q := range quotas {
			sum += q
		}
		if sum != tc.sum {
			t.Fatalf("target %g over %d: quotas %v sum to %d, want %d",
				tc.target, tc.n, quotas, sum, tc.sum)
		}
	}
}
