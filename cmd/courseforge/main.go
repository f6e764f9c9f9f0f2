package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"courseforge/internal/bootstrap"
	"courseforge/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "courseforge",
		Short:         "Plan, enrich, and export instructor-led courses",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("workspace", ".", "workspace directory")

	root.AddCommand(
		newCourseCmd(),
		newPlanCmd(),
		newEnrichCmd(),
		newPluginCmd(),
		newExportCmd(),
		newConvertCmd(),
		newReindexCmd(),
		newTUICmd(),
	)
	return root
}

// withApp boots the application for one command invocation and tears
// it down afterwards.
func withApp(fn func(*bootstrap.App, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		workspace, err := cmd.Flags().GetString("workspace")
		if err != nil {
			return err
		}
		app, err := bootstrap.New(cmd.Context(), workspace)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(app, cmd, args)
	}
}

func newCourseCmd() *cobra.Command {
	course := &cobra.Command{Use: "course", Short: "Manage courses"}

	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a course, optionally from an outline document",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("track-type") && app.Config.Defaults.TrackType != "" {
				_ = cmd.Flags().Set("track-type", app.Config.Defaults.TrackType)
			}
			return app.CourseCLI.Create(cmd, args)
		}),
	}
	create.Flags().String("description", "", "course description")
	create.Flags().String("track-type", "", "course track type")
	create.Flags().String("outline", "", "outline document to seed lessons from (.md, .txt, .pdf)")
	create.Flags().String("outline-format", "", "outline syntax: structured or bullets (default: detect)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.CourseCLI.List(cmd, args)
		}),
	}

	show := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a course and its lessons",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.CourseCLI.Show(cmd, args)
		}),
	}

	del := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a course and its index row",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.CourseCLI.Delete(cmd, args)
		}),
	}

	course.AddCommand(create, list, show, del)
	return course
}

func newPlanCmd() *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Generate and inspect course plans"}

	generate := &cobra.Command{
		Use:   "generate <slug>",
		Short: "Distribute a course's lessons across a week grid",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			applyPlanDefaults(cmd, app.Config.Defaults)
			return app.PlanCLI.Generate(cmd, args)
		}),
	}
	generate.Flags().Int("weeks", 4, "number of weeks")
	generate.Flags().Int("chapters", 5, "chapters per week")
	generate.Flags().Float64("target", 0, "target lessons per chapter (0 = derive from lesson count)")
	generate.Flags().Int("first-week", 1, "number of the first week")
	generate.Flags().Int("weekly-minutes", 0, "scale each week to this many minutes (0 = no scaling)")
	generate.Flags().Int("sync-sessions", 1, "sync sessions appended to each chapter")
	generate.Flags().Bool("weekly-review", true, "append a review chapter to each week")
	generate.Flags().Bool("shared-review", true, "use the same review content for every week")

	regenerate := &cobra.Command{
		Use:   "regenerate <slug>",
		Short: "Replan a course with its stored grid",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.PlanCLI.Regenerate(cmd, args)
		}),
	}

	show := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a course's plan",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.PlanCLI.Show(cmd, args)
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.PlanCLI.List(cmd, args)
		}),
	}

	del := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a course's stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.PlanCLI.Delete(cmd, args)
		}),
	}

	plan.AddCommand(generate, regenerate, show, list, del)
	return plan
}

// applyPlanDefaults overlays courseforge.yaml defaults onto flags the
// user did not set explicitly.
func applyPlanDefaults(cmd *cobra.Command, defaults config.Defaults) {
	flags := cmd.Flags()
	setInt := func(name string, value int) {
		if !flags.Changed(name) && value != 0 {
			_ = flags.Set(name, strconv.Itoa(value))
		}
	}
	setInt("weeks", defaults.Weeks)
	setInt("chapters", defaults.ChaptersPerWeek)
	setInt("first-week", defaults.FirstWeek)
	setInt("weekly-minutes", defaults.WeeklyMinutes)
	setInt("sync-sessions", defaults.SyncSessions)
	if !flags.Changed("target") && defaults.TargetPerChapter != 0 {
		_ = flags.Set("target", strconv.FormatFloat(defaults.TargetPerChapter, 'f', -1, 64))
	}
	if !flags.Changed("weekly-review") {
		_ = flags.Set("weekly-review", strconv.FormatBool(defaults.WeeklyReview))
	}
	if !flags.Changed("shared-review") {
		_ = flags.Set("shared-review", strconv.FormatBool(defaults.SharedReview))
	}
}

func newEnrichCmd() *cobra.Command {
	enrich := &cobra.Command{
		Use:   "enrich <slug>",
		Short: "Run an enrichment plugin against a course's plan",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.EnrichCLI.Run(cmd, args)
		}),
	}
	enrich.Flags().String("plugin", "", "plugin to run")
	enrich.Flags().StringSlice("command", nil, "commands to run (default: all the plugin offers)")
	_ = enrich.MarkFlagRequired("plugin")
	return enrich
}

func newPluginCmd() *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Inspect enrichment plugins"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered plugins",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.EnrichCLI.List(cmd, args)
		}),
	}

	commands := &cobra.Command{
		Use:   "commands <plugin>",
		Short: "List the commands a plugin offers",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.EnrichCLI.Commands(cmd, args)
		}),
	}

	doctor := &cobra.Command{
		Use:   "doctor",
		Short: "Check every registered plugin",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.EnrichCLI.Doctor(cmd, args)
		}),
	}

	plugin.AddCommand(list, commands, doctor)
	return plugin
}

func newExportCmd() *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export plans"}

	xlsx := &cobra.Command{
		Use:   "xlsx <slug>",
		Short: "Export a plan as a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.ExportCLI.XLSX(cmd, args)
		}),
	}
	xlsx.Flags().String("out", "", "output path (default <slug>.xlsx)")

	maestro := &cobra.Command{
		Use:   "maestro <slug>",
		Short: "Export a plan as a Maestro import document",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.ExportCLI.Maestro(cmd, args)
		}),
	}
	maestro.Flags().String("out", "", "output path (default <slug>.json)")

	export.AddCommand(xlsx, maestro)
	return export
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <xlsx> <json>",
		Short: "Convert an existing spreadsheet to a Maestro import document",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.ExportCLI.Convert(cmd, args)
		}),
	}
}

func newReindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the query index from the markdown files",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.CourseCLI.Reindex(cmd, args)
		}),
	}
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse courses and plans interactively",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *bootstrap.App, cmd *cobra.Command, args []string) error {
			return app.RunTUI()
		}),
	}
}
