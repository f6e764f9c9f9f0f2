package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
const (
	ColorBase     = lipgloss.Color("#1e1e2e")
	ColorSurface  = lipgloss.Color("#313244")
	ColorOverlay  = lipgloss.Color("#6c7086")
	ColorText     = lipgloss.Color("#cdd6f4")
	ColorSubtext  = lipgloss.Color("#a6adc8")
	ColorLavender = lipgloss.Color("#b4befe")
	ColorBlue     = lipgloss.Color("#89b4fa")
	ColorGreen    = lipgloss.Color("#a6e3a1")
	ColorYellow   = lipgloss.Color("#f9e2af")
	ColorRed      = lipgloss.Color("#f38ba8")
	ColorMauve    = lipgloss.Color("#cba6f7")
)

type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Selected   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Error      lipgloss.Style
	StatusBar  lipgloss.Style
	WeekHeader lipgloss.Style
	Chapter    lipgloss.Style
	Synthetic  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(ColorMauve).Padding(0, 1),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(ColorLavender),
		Selected:   lipgloss.NewStyle().Foreground(ColorBase).Background(ColorBlue).Bold(true),
		Normal:     lipgloss.NewStyle().Foreground(ColorText),
		Muted:      lipgloss.NewStyle().Foreground(ColorOverlay),
		Accent:     lipgloss.NewStyle().Foreground(ColorGreen),
		Error:      lipgloss.NewStyle().Foreground(ColorRed),
		StatusBar:  lipgloss.NewStyle().Foreground(ColorSubtext).Background(ColorSurface).Padding(0, 1),
		WeekHeader: lipgloss.NewStyle().Bold(true).Foreground(ColorYellow),
		Chapter:    lipgloss.NewStyle().Foreground(ColorBlue),
		Synthetic:  lipgloss.NewStyle().Foreground(ColorOverlay).Italic(true),
	}
}
