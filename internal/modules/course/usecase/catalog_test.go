package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"courseforge/internal/modules/course/domain"
	"courseforge/internal/modules/course/dto"
	"courseforge/internal/modules/course/service"
	intakedto "courseforge/internal/modules/intake/dto"
	apperrors "courseforge/internal/platform/errors"
	"courseforge/internal/platform/tx"
)

type memCourseStore struct {
	courses map[string]domain.Course
}

func (m *memCourseStore) Save(_ context.Context, c domain.Course) error {
	m.courses[c.Slug] = c
	return nil
}

func (m *memCourseStore) Load(_ context.Context, slug string) (domain.Course, error) {
	c, ok := m.courses[slug]
	if !ok {
		return domain.Course{}, apperrors.ErrNotFound
	}
	return c, nil
}

func (m *memCourseStore) LoadAll(_ context.Context) ([]domain.Course, error) {
	var out []domain.Course
	for _, c := range m.courses {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCourseStore) Delete(_ context.Context, slug string) error {
	if _, ok := m.courses[slug]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.courses, slug)
	return nil
}

type memCourseProjector struct {
	rows map[string]domain.Summary
}

func (m *memCourseProjector) ProjectCourse(_ context.Context, c domain.Course) error {
	m.rows[c.Slug] = domain.Summary{
		Slug:        c.Slug,
		Title:       c.Title,
		TrackType:   c.TrackType,
		LessonCount: len(c.Lessons),
		UpdatedAt:   c.UpdatedAt,
	}
	return nil
}

func (m *memCourseProjector) DropCourse(_ context.Context, slug string) error {
	delete(m.rows, slug)
	return nil
}

func (m *memCourseProjector) Summaries(_ context.Context) ([]domain.Summary, error) {
	var out []domain.Summary
	for _, s := range m.rows {
		out = append(out, s)
	}
	return out, nil
}

type stubIntake struct {
	lessons []intakedto.Lesson
	err     error
}

func (s stubIntake) ParseFile(context.Context, string, string) ([]intakedto.Lesson, error) {
	return s.lessons, s.err
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestCatalog(intake stubIntake) (*Catalog, *memCourseStore, *memCourseProjector) {
	store := &memCourseStore{courses: map[string]domain.Course{}}
	projector := &memCourseProjector{rows: map[string]domain.Summary{}}
	catalog := NewCatalog(
		service.NewCourseService(fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}),
		store,
		projector,
		intake,
		tx.NoopManager{},
	)
	return catalog, store, projector
}

func TestCreateWithOutline(t *testing.T) {
	t.Parallel()

	catalog, store, projector := newTestCatalog(stubIntake{lessons: []intakedto.Lesson{
		{Title: "Variables"},
		{Title: "Control Flow"},
	}})

	course, err := catalog.Create(context.Background(), dto.CreateCommand{
		Title:      "Go Basics",
		IntakePath: "outline.md",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if course.Slug != "go-basics" {
		t.Fatalf("slug = %q", course.Slug)
	}
	if course.LessonCount != 2 {
		t.Fatalf("lesson count = %d, want 2", course.LessonCount)
	}
	if course.TrackType != "Programming" {
		t.Fatalf("track type = %q, want default", course.TrackType)
	}
	if _, ok := store.courses["go-basics"]; !ok {
		t.Fatal("course was not saved")
	}
	if _, ok := projector.rows["go-basics"]; !ok {
		t.Fatal("course was not projected")
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	t.Parallel()

	catalog, _, _ := newTestCatalog(stubIntake{})
	_, err := catalog.Create(context.Background(), dto.CreateCommand{Title: "   "})
	if !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestCreatePropagatesIntakeFailure(t *testing.T) {
	t.Parallel()

	catalog, _, _ := newTestCatalog(stubIntake{err: apperrors.ErrInvalidConfiguration})
	_, err := catalog.Create(context.Background(), dto.CreateCommand{
		Title:      "Go Basics",
		IntakePath: "broken.md",
	})
	if !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestLessonsKeepCourseOrder(t *testing.T) {
	t.Parallel()

	catalog, _, _ := newTestCatalog(stubIntake{lessons: []intakedto.Lesson{
		{Title: "A"}, {Title: "B"}, {Title: "C"},
	}})
	if _, err := catalog.Create(context.Background(), dto.CreateCommand{
		Title:      "Ordered",
		IntakePath: "outline.md",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	lessons, err := catalog.Lessons(context.Background(), "ordered")
	if err != nil {
		t.Fatalf("Lessons: %v", err)
	}
	for i, want := range []string{"A", "B", "C"} {
		if lessons[i].Title != want {
			t.Fatalf("lesson %d = %q, want %q", i, lessons[i].Title, want)
		}
	}
}

func TestDeleteRemovesCourseAndProjection(t *testing.T) {
	t.Parallel()

	catalog, store, projector := newTestCatalog(stubIntake{})
	if _, err := catalog.Create(context.Background(), dto.CreateCommand{Title: "Go Basics"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := catalog.Delete(context.Background(), "go-basics"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := store.courses["go-basics"]; ok {
		t.Fatal("course survived the delete")
	}
	if _, ok := projector.rows["go-basics"]; ok {
		t.Fatal("projection survived the delete")
	}
}

func TestDeleteUnknownCourse(t *testing.T) {
	t.Parallel()

	catalog, _, _ := newTestCatalog(stubIntake{})
	if err := catalog.Delete(context.Background(), "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReindexProjectsEveryCourse(t *testing.T) {
	t.Parallel()

	catalog, store, projector := newTestCatalog(stubIntake{})
	store.courses["a"] = domain.Course{Slug: "a", Title: "A"}
	store.courses["b"] = domain.Course{Slug: "b", Title: "B"}

	n, err := catalog.Reindex(context.Background())
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if n != 2 || len(projector.rows) != 2 {
		t.Fatalf("reindexed %d, projected %d", n, len(projector.rows))
	}
}
