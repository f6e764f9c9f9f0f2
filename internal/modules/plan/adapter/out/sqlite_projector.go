package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"courseforge/internal/modules/plan/domain"
)

const planSchema = `
CREATE TABLE IF NOT EXISTS plans (
	course_slug  TEXT PRIMARY KEY,
	weeks        INTEGER NOT NULL,
	items        INTEGER NOT NULL,
	minutes      INTEGER NOT NULL,
	generated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS plan_items (
	course_slug TEXT NOT NULL,
	week        INTEGER NOT NULL,
	chapter     TEXT NOT NULL,
	position    INTEGER NOT NULL,
	title       TEXT NOT NULL,
	kind        TEXT NOT NULL,
	minutes     INTEGER NOT NULL,
	synthetic   INTEGER NOT NULL,
	structural  INTEGER NOT NULL,
	PRIMARY KEY (course_slug, chapter, position)
);
`

// SQLiteProjector mirrors plan snapshots into sqlite for the list and
// detail views. The snapshot files stay the source of truth; the index
// can always be rebuilt from them.
type SQLiteProjector struct {
	db *sql.DB
}

func NewSQLiteProjector(db *sql.DB) *SQLiteProjector {
	return &SQLiteProjector{db: db}
}

func (p *SQLiteProjector) Init(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, planSchema); err != nil {
		return fmt.Errorf("init plan schema: %w", err)
	}
	return nil
}

func (p *SQLiteProjector) ProjectPlan(ctx context.Context, snap domain.Snapshot) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := deletePlan(ctx, tx, snap.CourseSlug); err != nil {
		return err
	}

	items := 0
	for _, w := range snap.Syllabus.Weeks {
		for _, ch := range w.Chapters {
			for pos, it := range ch.Items {
				items++
				_, err := tx.ExecContext(ctx,
					`INSERT INTO plan_items
					 (course_slug, week, chapter, position, title, kind, minutes, synthetic, structural)
					 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					snap.CourseSlug, w.Number, ch.Number, pos,
					it.Title, string(it.Kind), it.Minutes,
					boolToInt(it.Synthetic), boolToInt(it.Structural))
				if err != nil {
					return fmt.Errorf("insert plan item: %w", err)
				}
			}
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO plans (course_slug, weeks, items, minutes, generated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.CourseSlug, len(snap.Syllabus.Weeks), items,
		snap.Syllabus.Minutes(), snap.GeneratedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert plan summary: %w", err)
	}
	return tx.Commit()
}

func (p *SQLiteProjector) DropPlan(ctx context.Context, courseSlug string) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()
	if err := deletePlan(ctx, tx, courseSlug); err != nil {
		return err
	}
	return tx.Commit()
}

func (p *SQLiteProjector) Summaries(ctx context.Context) ([]domain.PlanSummary, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT course_slug, weeks, items, minutes, generated_at
		 FROM plans ORDER BY course_slug`)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var out []domain.PlanSummary
	for rows.Next() {
		var s domain.PlanSummary
		var generated string
		if err := rows.Scan(&s.CourseSlug, &s.Weeks, &s.Items, &s.Minutes, &generated); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		s.GeneratedAt, err = time.Parse(time.RFC3339, generated)
		if err != nil {
			return nil, fmt.Errorf("parse generated_at: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func deletePlan(ctx context.Context, tx *sql.Tx, slug string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM plan_items WHERE course_slug = ?`, slug); err != nil {
		return fmt.Errorf("delete plan items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM plans WHERE course_slug = ?`, slug); err != nil {
		return fmt.Errorf("delete plan summary: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
