package out

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"courseforge/internal/modules/course/domain"
	apperrors "courseforge/internal/platform/errors"
)

func testCourse() domain.Course {
	return domain.Course{
		Slug:      "go-basics",
		Title:     "Go Basics",
		TrackType: "Programming",
		Lessons: []domain.Lesson{
			{Title: "Variables", Description: "zero values"},
			{Title: "Control Flow"},
		},
		CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMarkdownCourseStore(t.TempDir())
	ctx := context.Background()
	if err := store.Save(ctx, testCourse()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "go-basics")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Title != "Go Basics" || len(loaded.Lessons) != 2 {
		t.Fatalf("loaded = %+v", loaded)
	}
	if loaded.Lessons[0].Description != "zero values" {
		t.Fatalf("lesson description = %q", loaded.Lessons[0].Description)
	}
}

func TestSavePreservesNotesOutsideManagedBlock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewMarkdownCourseStore(dir)
	ctx := context.Background()
	course := testCourse()
	if err := store.Save(ctx, course); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Simulate an author adding notes outside the managed block.
	path := filepath.Join(dir, "go-basics.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	edited := strings.Replace(string(data), "# Go Basics\n", "# Go Basics\n\nMy private notes.\n", 1)
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	course.Lessons = append(course.Lessons, domain.Lesson{Title: "Functions"})
	if err := store.Save(ctx, course); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if !strings.Contains(string(data), "My private notes.") {
		t.Fatal("author notes were lost on rewrite")
	}
	if !strings.Contains(string(data), "- Functions") {
		t.Fatal("outline block was not updated")
	}
}

func TestLoadMissingCourse(t *testing.T) {
	t.Parallel()

	store := NewMarkdownCourseStore(t.TempDir())
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesCourseFile(t *testing.T) {
	t.Parallel()

	store := NewMarkdownCourseStore(t.TempDir())
	ctx := context.Background()
	if err := store.Save(ctx, testCourse()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete(ctx, "go-basics"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(ctx, "go-basics"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Load after delete: err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "go-basics"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	store := NewMarkdownCourseStore(t.TempDir())
	ctx := context.Background()
	a := testCourse()
	b := testCourse()
	b.Slug, b.Title = "rust-basics", "Rust Basics"
	if err := store.Save(ctx, b); err != nil {
		t.Fatalf("Save b: %v", err)
	}
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save a: %v", err)
	}

	courses, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(courses) != 2 || courses[0].Slug != "go-basics" || courses[1].Slug != "rust-basics" {
		t.Fatalf("courses = %+v", courses)
	}
}
