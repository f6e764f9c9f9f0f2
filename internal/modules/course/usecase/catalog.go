package usecase

import (
	"context"
	"fmt"

	"courseforge/internal/modules/course/domain"
	"courseforge/internal/modules/course/dto"
	"courseforge/internal/modules/course/port/in"
	"courseforge/internal/modules/course/port/out"
	"courseforge/internal/modules/course/service"
	intakein "courseforge/internal/modules/intake/port/in"
	"courseforge/internal/platform/tx"
)

// Catalog implements the course module's inbound port on top of the
// markdown store and the query index.
type Catalog struct {
	service   *service.CourseService
	store     out.CourseStore
	projector out.Projector
	intake    intakein.Intake
	txm       tx.Manager
}

func NewCatalog(
	svc *service.CourseService,
	store out.CourseStore,
	projector out.Projector,
	intake intakein.Intake,
	txm tx.Manager,
) *Catalog {
	return &Catalog{
		service:   svc,
		store:     store,
		projector: projector,
		intake:    intake,
		txm:       txm,
	}
}

var _ in.Catalog = (*Catalog)(nil)

func (c *Catalog) Create(ctx context.Context, cmd dto.CreateCommand) (dto.Course, error) {
	var lessons []domain.Lesson
	if cmd.IntakePath != "" {
		parsed, err := c.intake.ParseFile(ctx, cmd.IntakePath, cmd.IntakeFormat)
		if err != nil {
			return dto.Course{}, fmt.Errorf("intake %s: %w", cmd.IntakePath, err)
		}
		lessons = make([]domain.Lesson, 0, len(parsed))
		for _, l := range parsed {
			lessons = append(lessons, domain.Lesson{
				Title:       l.Title,
				Description: l.Description,
				Minutes:     l.Minutes,
			})
		}
	}

	course, err := c.service.NewCourse(cmd.Title, cmd.Description, cmd.TrackType, lessons)
	if err != nil {
		return dto.Course{}, err
	}
	if err := c.persist(ctx, course); err != nil {
		return dto.Course{}, err
	}
	return toDTO(course), nil
}

func (c *Catalog) Get(ctx context.Context, slug string) (dto.Course, error) {
	course, err := c.store.Load(ctx, slug)
	if err != nil {
		return dto.Course{}, err
	}
	return toDTO(course), nil
}

func (c *Catalog) List(ctx context.Context) ([]dto.Course, error) {
	summaries, err := c.projector.Summaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	courses := make([]dto.Course, 0, len(summaries))
	for _, s := range summaries {
		courses = append(courses, dto.Course{
			Slug:        s.Slug,
			Title:       s.Title,
			TrackType:   s.TrackType,
			LessonCount: s.LessonCount,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return courses, nil
}

func (c *Catalog) Lessons(ctx context.Context, slug string) ([]dto.Lesson, error) {
	course, err := c.store.Load(ctx, slug)
	if err != nil {
		return nil, err
	}
	lessons := make([]dto.Lesson, 0, len(course.Lessons))
	for _, l := range course.Lessons {
		lessons = append(lessons, dto.Lesson{
			Title:       l.Title,
			Description: l.Description,
			Minutes:     l.Minutes,
		})
	}
	return lessons, nil
}

func (c *Catalog) Reindex(ctx context.Context) (int, error) {
	courses, err := c.store.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load courses: %w", err)
	}
	err = c.txm.Within(ctx, func(ctx context.Context) error {
		for _, course := range courses {
			if err := c.projector.ProjectCourse(ctx, course); err != nil {
				return fmt.Errorf("project %s: %w", course.Slug, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(courses), nil
}

func (c *Catalog) Delete(ctx context.Context, slug string) error {
	if _, err := c.store.Load(ctx, slug); err != nil {
		return err
	}
	return c.txm.Within(ctx, func(ctx context.Context) error {
		if err := c.store.Delete(ctx, slug); err != nil {
			return fmt.Errorf("delete course: %w", err)
		}
		if err := c.projector.DropCourse(ctx, slug); err != nil {
			return fmt.Errorf("drop course projection: %w", err)
		}
		return nil
	})
}

func (c *Catalog) persist(ctx context.Context, course domain.Course) error {
	return c.txm.Within(ctx, func(ctx context.Context) error {
		if err := c.store.Save(ctx, course); err != nil {
			return fmt.Errorf("save course: %w", err)
		}
		if err := c.projector.ProjectCourse(ctx, course); err != nil {
			return fmt.Errorf("project course: %w", err)
		}
		return nil
	})
}

func toDTO(course domain.Course) dto.Course {
	return dto.Course{
		Slug:        course.Slug,
		Title:       course.Title,
		Description: course.Description,
		TrackType:   course.TrackType,
		LessonCount: len(course.Lessons),
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}
