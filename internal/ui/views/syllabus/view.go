package syllabus

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plandto "courseforge/internal/modules/plan/dto"
	"courseforge/internal/ui/theme"
)

// Model renders one course's plan as a scrollable tree.
type Model struct {
	viewport viewport.Model
	plan     plandto.Plan
	hasPlan  bool
	styles   theme.Styles
}

func New(styles theme.Styles) Model {
	vp := viewport.New(80, 20)
	return Model{viewport: vp, styles: styles}
}

func (m *Model) SetPlan(plan plandto.Plan) {
	m.plan = plan
	m.hasPlan = true
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
}

func (m *Model) SetSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = h
	if m.hasPlan {
		m.viewport.SetContent(m.render())
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.hasPlan {
		return m.styles.Muted.Render("no plan yet; generate one with `courseforge plan generate`")
	}
	title := m.styles.Title.Render(fmt.Sprintf("Plan: %s (%d min)", m.plan.CourseSlug, m.plan.Minutes))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
}

func (m Model) render() string {
	var b strings.Builder
	for _, w := range m.plan.Weeks {
		header := fmt.Sprintf("Week %d", w.Number)
		if w.LearningGoal != "" {
			header += ": " + w.LearningGoal
		}
		header += fmt.Sprintf(" [%d min]", weekMinutes(w))
		b.WriteString(m.styles.WeekHeader.Render(header))
		b.WriteByte('\n')
		for _, ch := range w.Chapters {
			title := ch.Title
			if title == "" {
				title = "Chapter"
			}
			b.WriteString("  ")
			b.WriteString(m.styles.Chapter.Render(fmt.Sprintf("%s %s", ch.Number, title)))
			b.WriteByte('\n')
			for _, it := range ch.Items {
				line := fmt.Sprintf("    %s (%d min)", it.Title, it.Minutes)
				if it.Synthetic || it.Structural {
					b.WriteString(m.styles.Synthetic.Render(line))
				} else {
					b.WriteString(m.styles.Normal.Render(line))
				}
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func weekMinutes(w plandto.Week) int {
	total := 0
	for _, ch := range w.Chapters {
		for _, it := range ch.Items {
			total += it.Minutes
		}
	}
	return total
}
