package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"courseforge/internal/modules/course/domain"
	apperrors "courseforge/internal/platform/errors"
	"courseforge/internal/platform/markdown"
)

// MarkdownCourseStore keeps each course as a markdown file under
// <dir>/<slug>.md. Lessons live in the yaml frontmatter; the outline
// rendered into the body is a managed block, so authors can keep notes
// around it that survive rewrites.
type MarkdownCourseStore struct {
	dir string
}

func NewMarkdownCourseStore(dir string) *MarkdownCourseStore {
	return &MarkdownCourseStore{dir: dir}
}

type courseMeta struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description,omitempty"`
	TrackType   string          `yaml:"track_type"`
	CreatedAt   time.Time       `yaml:"created_at"`
	UpdatedAt   time.Time       `yaml:"updated_at"`
	Lessons     []domain.Lesson `yaml:"lessons"`
}

func (s *MarkdownCourseStore) Save(ctx context.Context, c domain.Course) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create course dir: %w", err)
	}

	body := fmt.Sprintf("# %s\n", c.Title)
	if existing, err := os.ReadFile(s.path(c.Slug)); err == nil {
		_, prevBody := markdown.SplitFrontmatter(existing)
		body = string(prevBody)
	}
	body = markdown.ReplaceManagedBlock(body, "outline", renderOutline(c))

	doc, err := markdown.RenderFrontmatter(courseMeta{
		Title:       c.Title,
		Description: c.Description,
		TrackType:   c.TrackType,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Lessons:     c.Lessons,
	}, []byte(body))
	if err != nil {
		return fmt.Errorf("render course %s: %w", c.Slug, err)
	}
	if err := os.WriteFile(s.path(c.Slug), doc, 0o644); err != nil {
		return fmt.Errorf("write course %s: %w", c.Slug, err)
	}
	return nil
}

func (s *MarkdownCourseStore) Load(ctx context.Context, slug string) (domain.Course, error) {
	data, err := os.ReadFile(s.path(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Course{}, fmt.Errorf("%w: course %s", apperrors.ErrNotFound, slug)
		}
		return domain.Course{}, fmt.Errorf("read course %s: %w", slug, err)
	}
	meta, _ := markdown.SplitFrontmatter(data)
	if meta == nil {
		return domain.Course{}, fmt.Errorf("course %s has no frontmatter", slug)
	}
	var m courseMeta
	if err := markdown.DecodeFrontmatter(meta, &m); err != nil {
		return domain.Course{}, fmt.Errorf("course %s: %w", slug, err)
	}
	return domain.Course{
		Slug:        slug,
		Title:       m.Title,
		Description: m.Description,
		TrackType:   m.TrackType,
		Lessons:     m.Lessons,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

func (s *MarkdownCourseStore) LoadAll(ctx context.Context) ([]domain.Course, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read course dir: %w", err)
	}
	var courses []domain.Course
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		course, err := s.Load(ctx, slug)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Slug < courses[j].Slug })
	return courses, nil
}

func (s *MarkdownCourseStore) Delete(ctx context.Context, slug string) error {
	if err := os.Remove(s.path(slug)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: course %s", apperrors.ErrNotFound, slug)
		}
		return fmt.Errorf("delete course %s: %w", slug, err)
	}
	return nil
}

func (s *MarkdownCourseStore) path(slug string) string {
	return filepath.Join(s.dir, slug+".md")
}

func renderOutline(c domain.Course) string {
	var b strings.Builder
	for _, l := range c.Lessons {
		b.WriteString("- ")
		b.WriteString(l.Title)
		if l.Description != "" {
			b.WriteString(": ")
			b.WriteString(l.Description)
		}
		b.WriteByte('\n')
	}
	if len(c.Lessons) == 0 {
		b.WriteString("_no lessons yet_\n")
	}
	return b.String()
}
