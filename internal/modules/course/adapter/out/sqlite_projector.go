package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"courseforge/internal/modules/course/domain"
)

const courseSchema = `
CREATE TABLE IF NOT EXISTS courses (
	slug         TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	track_type   TEXT NOT NULL,
	lesson_count INTEGER NOT NULL,
	updated_at   TEXT NOT NULL
);
`

// SQLiteProjector mirrors course summaries into sqlite. The markdown
// files stay the source of truth.
type SQLiteProjector struct {
	db *sql.DB
}

func NewSQLiteProjector(db *sql.DB) *SQLiteProjector {
	return &SQLiteProjector{db: db}
}

func (p *SQLiteProjector) Init(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, courseSchema); err != nil {
		return fmt.Errorf("init course schema: %w", err)
	}
	return nil
}

func (p *SQLiteProjector) ProjectCourse(ctx context.Context, c domain.Course) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO courses (slug, title, track_type, lesson_count, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			track_type = excluded.track_type,
			lesson_count = excluded.lesson_count,
			updated_at = excluded.updated_at`,
		c.Slug, c.Title, c.TrackType, len(c.Lessons),
		c.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("project course %s: %w", c.Slug, err)
	}
	return nil
}

func (p *SQLiteProjector) DropCourse(ctx context.Context, slug string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM courses WHERE slug = ?`, slug); err != nil {
		return fmt.Errorf("drop course %s: %w", slug, err)
	}
	return nil
}

func (p *SQLiteProjector) Summaries(ctx context.Context) ([]domain.Summary, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT slug, title, track_type, lesson_count, updated_at
		 FROM courses ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var out []domain.Summary
	for rows.Next() {
		var s domain.Summary
		var updated string
		if err := rows.Scan(&s.Slug, &s.Title, &s.TrackType, &s.LessonCount, &updated); err != nil {
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		s.UpdatedAt, err = time.Parse(time.RFC3339, updated)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
