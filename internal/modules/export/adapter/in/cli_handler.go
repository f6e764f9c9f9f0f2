package in

import (
	"fmt"

	"github.com/spf13/cobra"

	portin "courseforge/internal/modules/export/port/in"
)

// CLIHandler adapts cobra commands to the exporter port.
type CLIHandler struct {
	exporter portin.Exporter
}

func NewCLIHandler(exporter portin.Exporter) *CLIHandler {
	return &CLIHandler{exporter: exporter}
}

func (h *CLIHandler) XLSX(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if path == "" {
		path = args[0] + ".xlsx"
	}
	if err := h.exporter.ExportXLSX(cmd.Context(), args[0], path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func (h *CLIHandler) Maestro(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if path == "" {
		path = args[0] + ".json"
	}
	if err := h.exporter.ExportMaestro(cmd.Context(), args[0], path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func (h *CLIHandler) Convert(cmd *cobra.Command, args []string) error {
	if err := h.exporter.ConvertXLSX(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
	return nil
}
