package in

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseforge/internal/modules/course/dto"
	portin "courseforge/internal/modules/course/port/in"
)

// CLIHandler adapts cobra commands to the course catalog port.
type CLIHandler struct {
	catalog portin.Catalog
}

func NewCLIHandler(catalog portin.Catalog) *CLIHandler {
	return &CLIHandler{catalog: catalog}
}

func (h *CLIHandler) Create(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	createCmd := dto.CreateCommand{Title: args[0]}
	var err error
	if createCmd.Description, err = flags.GetString("description"); err != nil {
		return err
	}
	if createCmd.TrackType, err = flags.GetString("track-type"); err != nil {
		return err
	}
	if createCmd.IntakePath, err = flags.GetString("outline"); err != nil {
		return err
	}
	if createCmd.IntakeFormat, err = flags.GetString("outline-format"); err != nil {
		return err
	}

	course, err := h.catalog.Create(cmd.Context(), createCmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s (%d lessons)\n", course.Slug, course.LessonCount)
	return nil
}

func (h *CLIHandler) List(cmd *cobra.Command, args []string) error {
	courses, err := h.catalog.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no courses yet")
		return nil
	}
	for _, c := range courses {
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-40s %3d lessons\n", c.Slug, c.Title, c.LessonCount)
	}
	return nil
}

func (h *CLIHandler) Show(cmd *cobra.Command, args []string) error {
	course, err := h.catalog.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", course.Title)
	if course.Description != "" {
		fmt.Fprintf(out, "%s\n", course.Description)
	}
	fmt.Fprintf(out, "track: %s\n", course.TrackType)

	lessons, err := h.catalog.Lessons(cmd.Context(), course.Slug)
	if err != nil {
		return err
	}
	for i, l := range lessons {
		fmt.Fprintf(out, "%3d. %s\n", i+1, l.Title)
	}
	return nil
}

func (h *CLIHandler) Delete(cmd *cobra.Command, args []string) error {
	if err := h.catalog.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}

func (h *CLIHandler) Reindex(cmd *cobra.Command, args []string) error {
	n, err := h.catalog.Reindex(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d courses\n", n)
	return nil
}
