package domain

import "testing"

func TestEstimateMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  int
	}{
		{"Practice Session", 60},
		{"⚙ Practice Session", 60},
		{"Weekly Review", 120},
		{"Final Assessment", 120},
		{"Sync Session: Q&A", 90},
		{"Introduction to Pointers", 45},
	}
	for _, tc := range cases {
		if got := EstimateMinutes(tc.title); got != tc.want {
			t.Fatalf("EstimateMinutes(%q) = %d, want %d", tc.title, got, tc.want)
		}
	}
}

func TestApplyEstimates(t *testing.T) {
	t.Parallel()

	s := Syllabus{Weeks: []Week{{
		Number: 1,
		Chapters: []Chapter{{
			Number: "1.1",
			Items: []Item{
				{Title: "Practice Session", Kind: KindExercise},
				{Title: "Slices in Depth", Kind: KindLesson},
				{Title: "Quick check", Minutes: 10, Kind: KindLesson},
			},
		}},
	}}}
	ApplyEstimates(&s)

	items := s.Weeks[0].Chapters[0].Items
	if items[0].Minutes != 60 {
		t.Fatalf("practice minutes = %d, want 60", items[0].Minutes)
	}
	if items[1].Minutes != 45 {
		t.Fatalf("default minutes = %d, want 45", items[1].Minutes)
	}
	if items[2].Minutes != 30 {
		t.Fatalf("floored minutes = %d, want 30", items[2].Minutes)
	}
}

func TestScaleWeekToTarget(t *testing.T) {
	t.Parallel()

	week := Week{
		Number: 1,
		Chapters: []Chapter{{
			Number: "1.1",
			Items: []Item{
				{Title: "A", Minutes: 60},
				{Title: "B", Minutes: 60},
				{Title: "C", Minutes: 60},
			},
		}},
	}
	ScaleWeekToTarget(&week, 360)

	for _, it := range week.Chapters[0].Items {
		if it.Minutes != 120 {
			t.Fatalf("item %s minutes = %d, want 120", it.Title, it.Minutes)
		}
	}
}

func TestScaleWeekToTargetSnapsAndFloors(t *testing.T) {
	t.Parallel()

	week := Week{
		Number: 1,
		Chapters: []Chapter{{
			Number: "1.1",
			Items: []Item{
				{Title: "A", Minutes: 45},
				{Title: "B", Minutes: 90},
			},
		}},
	}
	// Factor of about 0.22 pushes both items below the floor or off a
	// 5-minute step.
	ScaleWeekToTarget(&week, 30)

	items := week.Chapters[0].Items
	if items[0].Minutes != 15 {
		t.Fatalf("item A minutes = %d, want 15", items[0].Minutes)
	}
	if items[1].Minutes != 20 {
		t.Fatalf("item B minutes = %d, want 20", items[1].Minutes)
	}
}

func TestScaleWeekToTargetIgnoresEmptyWeek(t *testing.T) {
	t.Parallel()

	week := Week{Number: 1}
	ScaleWeekToTarget(&week, 300)
	if week.Minutes() != 0 {
		t.Fatalf("empty week minutes = %d", week.Minutes())
	}
}
