package in

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseforge/internal/modules/plan/dto"
	portin "courseforge/internal/modules/plan/port/in"
)

// CLIHandler adapts cobra commands to the planner port.
type CLIHandler struct {
	planner portin.Planner
}

func NewCLIHandler(planner portin.Planner) *CLIHandler {
	return &CLIHandler{planner: planner}
}

func (h *CLIHandler) Generate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	genCmd := portin.GenerateCommand{CourseSlug: args[0]}
	var err error
	if genCmd.Weeks, err = flags.GetInt("weeks"); err != nil {
		return err
	}
	if genCmd.ChaptersPerWeek, err = flags.GetInt("chapters"); err != nil {
		return err
	}
	if genCmd.TargetPerChapter, err = flags.GetFloat64("target"); err != nil {
		return err
	}
	if genCmd.FirstWeek, err = flags.GetInt("first-week"); err != nil {
		return err
	}
	if genCmd.WeeklyMinutes, err = flags.GetInt("weekly-minutes"); err != nil {
		return err
	}
	if genCmd.SyncSessionsPerChapter, err = flags.GetInt("sync-sessions"); err != nil {
		return err
	}
	if genCmd.WeeklyReview, err = flags.GetBool("weekly-review"); err != nil {
		return err
	}
	if genCmd.SharedReview, err = flags.GetBool("shared-review"); err != nil {
		return err
	}

	plan, err := h.planner.Generate(cmd.Context(), genCmd)
	if err != nil {
		return err
	}
	h.printPlan(cmd, plan)
	return nil
}

func (h *CLIHandler) Regenerate(cmd *cobra.Command, args []string) error {
	plan, err := h.planner.Regenerate(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	h.printPlan(cmd, plan)
	return nil
}

func (h *CLIHandler) Show(cmd *cobra.Command, args []string) error {
	plan, err := h.planner.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	h.printPlan(cmd, plan)
	return nil
}

func (h *CLIHandler) Delete(cmd *cobra.Command, args []string) error {
	if err := h.planner.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted plan for %s\n", args[0])
	return nil
}

func (h *CLIHandler) List(cmd *cobra.Command, args []string) error {
	summaries, err := h.planner.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no plans yet")
		return nil
	}
	for _, s := range summaries {
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %2d weeks %4d items %5d min  %s\n",
			s.CourseSlug, s.Weeks, s.Items, s.Minutes,
			s.GeneratedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (h *CLIHandler) printPlan(cmd *cobra.Command, plan dto.Plan) {
	out := cmd.OutOrStdout()
	for _, w := range plan.Weeks {
		fmt.Fprintf(out, "Week %d", w.Number)
		if w.LearningGoal != "" {
			fmt.Fprintf(out, ": %s", w.LearningGoal)
		}
		fmt.Fprintln(out)
		for _, ch := range w.Chapters {
			title := ch.Title
			if title == "" {
				title = fmt.Sprintf("Chapter %s", ch.Number)
			}
			fmt.Fprintf(out, "  %s %s\n", ch.Number, title)
			for _, it := range ch.Items {
				fmt.Fprintf(out, "    - %s (%d min)\n", it.Title, it.Minutes)
			}
		}
	}
	fmt.Fprintf(out, "total: %d min\n", plan.Minutes)
}
