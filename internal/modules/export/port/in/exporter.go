package in

import "context"

// Exporter is the export module's inbound surface.
type Exporter interface {
	// ExportXLSX renders a course's plan as a spreadsheet.
	ExportXLSX(ctx context.Context, courseSlug, path string) error

	// ExportMaestro renders a course's plan as a Maestro import
	// document.
	ExportMaestro(ctx context.Context, courseSlug, path string) error

	// ConvertXLSX turns an existing spreadsheet into a Maestro import
	// document without going through a stored plan.
	ConvertXLSX(ctx context.Context, xlsxPath, jsonPath string) error
}
