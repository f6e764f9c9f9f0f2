package out

import (
	"context"
	"errors"
	"testing"
	"time"

	"courseforge/internal/modules/plan/domain"
	apperrors "courseforge/internal/platform/errors"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewFileSnapshotStore(t.TempDir())
	ctx := context.Background()
	snap := domain.Snapshot{
		CourseSlug:  "go-basics",
		GeneratedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Grid:        domain.Grid{Weeks: 2, ChaptersPerWeek: 3, FirstWeek: 1},
		Syllabus: domain.Syllabus{Weeks: []domain.Week{{
			Number: 1,
			Chapters: []domain.Chapter{{
				Number: "1.1",
				Items:  []domain.Item{{Title: "Variables", Minutes: 45, Kind: domain.KindLesson}},
			}},
		}}},
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "go-basics")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Grid.ChaptersPerWeek != 3 {
		t.Fatalf("grid = %+v", loaded.Grid)
	}
	if loaded.Syllabus.Weeks[0].Chapters[0].Items[0].Title != "Variables" {
		t.Fatalf("syllabus = %+v", loaded.Syllabus)
	}
	if !loaded.GeneratedAt.Equal(snap.GeneratedAt) {
		t.Fatalf("generated at = %v", loaded.GeneratedAt)
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	t.Parallel()

	store := NewFileSnapshotStore(t.TempDir())
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, apperrors.ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestDeleteRemovesSnapshotFile(t *testing.T) {
	t.Parallel()

	store := NewFileSnapshotStore(t.TempDir())
	ctx := context.Background()
	snap := domain.Snapshot{CourseSlug: "c", Grid: domain.Grid{Weeks: 1, ChaptersPerWeek: 1, FirstWeek: 1}}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete(ctx, "c"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(ctx, "c"); !errors.Is(err, apperrors.ErrNoSnapshot) {
		t.Fatalf("Load after delete: err = %v, want ErrNoSnapshot", err)
	}
	if err := store.Delete(ctx, "c"); !errors.Is(err, apperrors.ErrNoSnapshot) {
		t.Fatalf("second Delete: err = %v, want ErrNoSnapshot", err)
	}
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	t.Parallel()

	store := NewFileSnapshotStore(t.TempDir())
	ctx := context.Background()
	snap := domain.Snapshot{CourseSlug: "c", Grid: domain.Grid{Weeks: 1, ChaptersPerWeek: 1, FirstWeek: 1}}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	snap.Grid.Weeks = 5
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	loaded, err := store.Load(ctx, "c")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Grid.Weeks != 5 {
		t.Fatalf("weeks = %d, want 5", loaded.Grid.Weeks)
	}
}
