package in

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseforge/internal/modules/enrich/dto"
	portin "courseforge/internal/modules/enrich/port/in"
)

// CLIHandler adapts cobra commands to the enricher port.
type CLIHandler struct {
	enricher portin.Enricher
}

func NewCLIHandler(enricher portin.Enricher) *CLIHandler {
	return &CLIHandler{enricher: enricher}
}

func (h *CLIHandler) List(cmd *cobra.Command, args []string) error {
	plugins, err := h.enricher.Plugins(cmd.Context())
	if err != nil {
		return err
	}
	if len(plugins) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no plugins registered")
		return nil
	}
	for _, p := range plugins {
		state := "enabled"
		if !p.Enabled {
			state = "disabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-8s %s\n", p.Name, state, p.Binary)
	}
	return nil
}

func (h *CLIHandler) Commands(cmd *cobra.Command, args []string) error {
	commands, err := h.enricher.Commands(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, c := range commands {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", c.ID, c.Description)
	}
	return nil
}

func (h *CLIHandler) Doctor(cmd *cobra.Command, args []string) error {
	entries, err := h.enricher.Doctor(cmd.Context())
	if err != nil {
		return err
	}
	for _, e := range entries {
		status := "ok"
		if !e.OK {
			status = "fail"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-5s %s\n", e.Plugin, status, e.Detail)
	}
	return nil
}

func (h *CLIHandler) Run(cmd *cobra.Command, args []string) error {
	plugin, err := cmd.Flags().GetString("plugin")
	if err != nil {
		return err
	}
	commands, err := cmd.Flags().GetStringSlice("command")
	if err != nil {
		return err
	}
	plan, err := h.enricher.Run(cmd.Context(), dto.RunCommand{
		CourseSlug: args[0],
		Plugin:     plugin,
		Commands:   commands,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "enriched plan for %s (%d weeks)\n", plan.CourseSlug, len(plan.Weeks))
	return nil
}
