package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	coursein "courseforge/internal/modules/course/port/in"
	"courseforge/internal/modules/export/domain"
	"courseforge/internal/modules/export/port/in"
	"courseforge/internal/modules/export/port/out"
	plandto "courseforge/internal/modules/plan/dto"
	planin "courseforge/internal/modules/plan/port/in"
	"courseforge/internal/platform/clock"
)

// Exporter renders stored plans as spreadsheets and Maestro import
// documents.
type Exporter struct {
	planner  planin.Planner
	courses  coursein.Catalog
	workbook out.Workbook
	docs     out.DocumentStore
	clk      clock.Clock
}

func NewExporter(
	planner planin.Planner,
	courses coursein.Catalog,
	workbook out.Workbook,
	docs out.DocumentStore,
	clk clock.Clock,
) *Exporter {
	return &Exporter{
		planner:  planner,
		courses:  courses,
		workbook: workbook,
		docs:     docs,
		clk:      clk,
	}
}

var _ in.Exporter = (*Exporter)(nil)

func (e *Exporter) ExportXLSX(ctx context.Context, courseSlug, path string) error {
	course, err := e.loadCourse(ctx, courseSlug)
	if err != nil {
		return err
	}
	if err := e.workbook.Write(ctx, path, course); err != nil {
		return fmt.Errorf("export %s: %w", courseSlug, err)
	}
	return nil
}

func (e *Exporter) ExportMaestro(ctx context.Context, courseSlug, path string) error {
	course, err := e.loadCourse(ctx, courseSlug)
	if err != nil {
		return err
	}
	doc := domain.BuildMaestro(course, e.clk.Now().Format("2006-01-02"))
	if err := e.docs.WriteJSON(ctx, path, doc); err != nil {
		return fmt.Errorf("export %s: %w", courseSlug, err)
	}
	return nil
}

func (e *Exporter) ConvertXLSX(ctx context.Context, xlsxPath, jsonPath string) error {
	cells, err := e.workbook.Read(ctx, xlsxPath)
	if err != nil {
		return err
	}
	weeks, err := domain.ParseRows(cells)
	if err != nil {
		return fmt.Errorf("convert %s: %w", xlsxPath, err)
	}
	course := domain.Course{
		Title: courseTitleFromPath(xlsxPath),
		Weeks: weeks,
	}
	doc := domain.BuildMaestro(course, e.clk.Now().Format("2006-01-02"))
	if err := e.docs.WriteJSON(ctx, jsonPath, doc); err != nil {
		return fmt.Errorf("convert %s: %w", xlsxPath, err)
	}
	return nil
}

func (e *Exporter) loadCourse(ctx context.Context, courseSlug string) (domain.Course, error) {
	meta, err := e.courses.Get(ctx, courseSlug)
	if err != nil {
		return domain.Course{}, err
	}
	plan, err := e.planner.Get(ctx, courseSlug)
	if err != nil {
		return domain.Course{}, err
	}
	return toExportCourse(meta.Title, meta.Description, meta.TrackType, plan), nil
}

func toExportCourse(title, description, trackType string, plan plandto.Plan) domain.Course {
	course := domain.Course{
		Title:       title,
		Description: description,
		TrackType:   trackType,
	}
	for _, w := range plan.Weeks {
		week := domain.Week{Number: w.Number, LearningGoal: w.LearningGoal}
		for _, ch := range w.Chapters {
			chapter := domain.Chapter{Number: ch.Number, Title: ch.Title, Goals: ch.Goals}
			for _, it := range ch.Items {
				chapter.Lessons = append(chapter.Lessons, domain.Lesson{
					Title:    it.Title,
					Minutes:  it.Minutes,
					Outcomes: it.Description,
					Practice: it.Synthetic,
				})
			}
			week.Chapters = append(week.Chapters, chapter)
		}
		course.Weeks = append(course.Weeks, week)
	}
	return course
}

// courseTitleFromPath mirrors the converter's convention of naming the
// course after the spreadsheet file.
func courseTitleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base
}
