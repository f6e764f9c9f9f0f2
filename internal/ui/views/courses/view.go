package courses

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	coursedto "courseforge/internal/modules/course/dto"
	"courseforge/internal/ui/theme"
)

// Model is the course list view.
type Model struct {
	table   table.Model
	courses []coursedto.Course
	styles  theme.Styles
}

func New(styles theme.Styles) Model {
	columns := []table.Column{
		{Title: "Slug", Width: 24},
		{Title: "Title", Width: 36},
		{Title: "Lessons", Width: 8},
		{Title: "Updated", Width: 16},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(theme.ColorLavender).BorderForeground(theme.ColorSurface)
	s.Selected = s.Selected.Foreground(theme.ColorBase).Background(theme.ColorBlue).Bold(true)
	t.SetStyles(s)
	return Model{table: t, styles: styles}
}

// SetCourses replaces the table contents.
func (m *Model) SetCourses(courses []coursedto.Course) {
	m.courses = courses
	rows := make([]table.Row, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, table.Row{
			c.Slug,
			c.Title,
			fmt.Sprintf("%d", c.LessonCount),
			c.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Selected returns the slug under the cursor, or "" when empty.
func (m Model) Selected() string {
	if len(m.courses) == 0 {
		return ""
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.courses) {
		return ""
	}
	return m.courses[idx].Slug
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.courses) == 0 {
		return m.styles.Muted.Render("no courses yet; create one with `courseforge course create`")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Courses"),
		m.table.View(),
	)
}

func (m *Model) SetHeight(h int) {
	m.table.SetHeight(h)
}
