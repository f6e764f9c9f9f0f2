package usecase

import (
	"context"
	"fmt"

	coursein "courseforge/internal/modules/course/port/in"
	"courseforge/internal/modules/plan/domain"
	"courseforge/internal/modules/plan/dto"
	"courseforge/internal/modules/plan/port/in"
	"courseforge/internal/modules/plan/port/out"
	"courseforge/internal/modules/plan/service"
	"courseforge/internal/platform/clock"
	"courseforge/internal/platform/tx"
)

// Planner implements the plan module's inbound port on top of the
// snapshot store, the query index, and the course catalog.
type Planner struct {
	service   *service.PlanService
	snapshots out.SnapshotStore
	projector out.Projector
	courses   coursein.Catalog
	clk       clock.Clock
	txm       tx.Manager
}

func NewPlanner(
	svc *service.PlanService,
	snapshots out.SnapshotStore,
	projector out.Projector,
	courses coursein.Catalog,
	clk clock.Clock,
	txm tx.Manager,
) *Planner {
	return &Planner{
		service:   svc,
		snapshots: snapshots,
		projector: projector,
		courses:   courses,
		clk:       clk,
		txm:       txm,
	}
}

var _ in.Planner = (*Planner)(nil)

func (p *Planner) Generate(ctx context.Context, cmd in.GenerateCommand) (dto.Plan, error) {
	lessons, err := p.lessonItems(ctx, cmd.CourseSlug)
	if err != nil {
		return dto.Plan{}, err
	}
	snap, err := p.service.Plan(lessons, service.GridSpec{
		Weeks:                  cmd.Weeks,
		ChaptersPerWeek:        cmd.ChaptersPerWeek,
		TargetPerChapter:       cmd.TargetPerChapter,
		FirstWeek:              cmd.FirstWeek,
		WeeklyMinutes:          cmd.WeeklyMinutes,
		SyncSessionsPerChapter: cmd.SyncSessionsPerChapter,
		WeeklyReview:           cmd.WeeklyReview,
		SharedReview:           cmd.SharedReview,
	})
	if err != nil {
		return dto.Plan{}, fmt.Errorf("plan course %q: %w", cmd.CourseSlug, err)
	}
	snap.CourseSlug = cmd.CourseSlug
	snap.GeneratedAt = p.clk.Now()
	if err := p.persist(ctx, snap); err != nil {
		return dto.Plan{}, err
	}
	return dto.FromSyllabus(snap.CourseSlug, snap.Syllabus), nil
}

func (p *Planner) Regenerate(ctx context.Context, courseSlug string) (dto.Plan, error) {
	prev, err := p.snapshots.Load(ctx, courseSlug)
	if err != nil {
		return dto.Plan{}, err
	}
	lessons, err := p.lessonItems(ctx, courseSlug)
	if err != nil {
		return dto.Plan{}, err
	}
	snap, err := p.service.Replan(lessons, prev.Grid)
	if err != nil {
		return dto.Plan{}, fmt.Errorf("replan course %q: %w", courseSlug, err)
	}
	snap.CourseSlug = courseSlug
	snap.GeneratedAt = p.clk.Now()
	if err := p.persist(ctx, snap); err != nil {
		return dto.Plan{}, err
	}
	return dto.FromSyllabus(courseSlug, snap.Syllabus), nil
}

func (p *Planner) Get(ctx context.Context, courseSlug string) (dto.Plan, error) {
	snap, err := p.snapshots.Load(ctx, courseSlug)
	if err != nil {
		return dto.Plan{}, err
	}
	return dto.FromSyllabus(courseSlug, snap.Syllabus), nil
}

func (p *Planner) List(ctx context.Context) ([]dto.Summary, error) {
	rows, err := p.projector.Summaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	out := make([]dto.Summary, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.Summary{
			CourseSlug:  r.CourseSlug,
			Weeks:       r.Weeks,
			Items:       r.Items,
			Minutes:     r.Minutes,
			GeneratedAt: r.GeneratedAt,
		})
	}
	return out, nil
}

func (p *Planner) Decorate(ctx context.Context, courseSlug string, d in.Decoration) (dto.Plan, error) {
	snap, err := p.snapshots.Load(ctx, courseSlug)
	if err != nil {
		return dto.Plan{}, err
	}
	deco := domain.Decoration{
		WeekGoals:     d.WeekGoals,
		PracticeNotes: d.PracticeNotes,
	}
	if len(d.Chapters) > 0 {
		deco.Chapters = make(map[string]domain.ChapterDecoration, len(d.Chapters))
		for num, ch := range d.Chapters {
			deco.Chapters[num] = domain.ChapterDecoration{Title: ch.Title, Goals: ch.Goals}
		}
	}
	snap.Syllabus.Apply(deco)
	snap.GeneratedAt = p.clk.Now()
	if err := p.persist(ctx, snap); err != nil {
		return dto.Plan{}, err
	}
	return dto.FromSyllabus(courseSlug, snap.Syllabus), nil
}

func (p *Planner) Delete(ctx context.Context, courseSlug string) error {
	if _, err := p.snapshots.Load(ctx, courseSlug); err != nil {
		return err
	}
	return p.txm.Within(ctx, func(ctx context.Context) error {
		if err := p.snapshots.Delete(ctx, courseSlug); err != nil {
			return fmt.Errorf("delete snapshot: %w", err)
		}
		if err := p.projector.DropPlan(ctx, courseSlug); err != nil {
			return fmt.Errorf("drop plan projection: %w", err)
		}
		return nil
	})
}

func (p *Planner) persist(ctx context.Context, snap domain.Snapshot) error {
	return p.txm.Within(ctx, func(ctx context.Context) error {
		if err := p.snapshots.Save(ctx, snap); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		if err := p.projector.ProjectPlan(ctx, snap); err != nil {
			return fmt.Errorf("project plan: %w", err)
		}
		return nil
	})
}

func (p *Planner) lessonItems(ctx context.Context, courseSlug string) ([]domain.Item, error) {
	lessons, err := p.courses.Lessons(ctx, courseSlug)
	if err != nil {
		return nil, fmt.Errorf("load lessons for %q: %w", courseSlug, err)
	}
	items := make([]domain.Item, 0, len(lessons))
	for _, l := range lessons {
		items = append(items, domain.Item{
			Title:       l.Title,
			Description: l.Description,
			Minutes:     l.Minutes,
			Kind:        domain.KindLesson,
		})
	}
	return items, nil
}
