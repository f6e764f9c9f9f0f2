package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	_ "modernc.org/sqlite"

	courseadapterin "courseforge/internal/modules/course/adapter/in"
	courseadapter "courseforge/internal/modules/course/adapter/out"
	coursein "courseforge/internal/modules/course/port/in"
	courseservice "courseforge/internal/modules/course/service"
	courseusecase "courseforge/internal/modules/course/usecase"
	enrichadapterin "courseforge/internal/modules/enrich/adapter/in"
	enrichadapter "courseforge/internal/modules/enrich/adapter/out"
	enrichin "courseforge/internal/modules/enrich/port/in"
	enrichservice "courseforge/internal/modules/enrich/service"
	enrichusecase "courseforge/internal/modules/enrich/usecase"
	exportadapterin "courseforge/internal/modules/export/adapter/in"
	exportadapter "courseforge/internal/modules/export/adapter/out"
	exportin "courseforge/internal/modules/export/port/in"
	exportusecase "courseforge/internal/modules/export/usecase"
	intakeadapter "courseforge/internal/modules/intake/adapter/out"
	intakeusecase "courseforge/internal/modules/intake/usecase"
	planadapterin "courseforge/internal/modules/plan/adapter/in"
	planadapter "courseforge/internal/modules/plan/adapter/out"
	planin "courseforge/internal/modules/plan/port/in"
	planservice "courseforge/internal/modules/plan/service"
	planusecase "courseforge/internal/modules/plan/usecase"
	"courseforge/internal/platform/clock"
	"courseforge/internal/platform/config"
	"courseforge/internal/platform/tx"
	"courseforge/internal/ui/app"
)

// App wires every module together for the CLI and the TUI.
type App struct {
	Config config.Config

	Courses  coursein.Catalog
	Planner  planin.Planner
	Enricher enrichin.Enricher
	Exporter exportin.Exporter

	CourseCLI *courseadapterin.CLIHandler
	PlanCLI   *planadapterin.CLIHandler
	EnrichCLI *enrichadapterin.CLIHandler
	ExportCLI *exportadapterin.CLIHandler

	db *sql.DB
}

func New(ctx context.Context, workspacePath string) (*App, error) {
	cfg, err := config.New(workspacePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}

	courseProjector := courseadapter.NewSQLiteProjector(db)
	if err := courseProjector.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	planProjector := planadapter.NewSQLiteProjector(db)
	if err := planProjector.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}

	clk := clock.SystemClock{}
	txm := tx.NoopManager{}

	intake := intakeusecase.NewIntake(intakeadapter.NewPDFExtractor())

	catalog := courseusecase.NewCatalog(
		courseservice.NewCourseService(clk),
		courseadapter.NewMarkdownCourseStore(filepath.Join(workspacePath, "courses")),
		courseProjector,
		intake,
		txm,
	)

	planner := planusecase.NewPlanner(
		planservice.NewPlanService(),
		planadapter.NewFileSnapshotStore(filepath.Join(workspacePath, ".courseforge", "plans")),
		planProjector,
		catalog,
		clk,
		txm,
	)

	enricher := enrichusecase.NewEnricher(
		enrichservice.NewEnrichService(),
		enrichadapter.NewFileManifestStore(workspacePath),
		enrichadapter.NewGRPCHost(),
		planner,
		workspacePath,
	)

	exporter := exportusecase.NewExporter(
		planner,
		catalog,
		exportadapter.NewExcelizeWorkbook(),
		exportadapter.NewJSONDocumentStore(),
		clk,
	)

	return &App{
		Config:    cfg,
		Courses:   catalog,
		Planner:   planner,
		Enricher:  enricher,
		Exporter:  exporter,
		CourseCLI: courseadapterin.NewCLIHandler(catalog),
		PlanCLI:   planadapterin.NewCLIHandler(planner),
		EnrichCLI: enrichadapterin.NewCLIHandler(enricher),
		ExportCLI: exportadapterin.NewCLIHandler(exporter),
		db:        db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// RunTUI starts the interactive browser.
func (a *App) RunTUI() error {
	program := tea.NewProgram(app.New(a.Courses, a.Planner), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
