package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	coursedto "courseforge/internal/modules/course/dto"
	coursein "courseforge/internal/modules/course/port/in"
	plandto "courseforge/internal/modules/plan/dto"
	planin "courseforge/internal/modules/plan/port/in"
	"courseforge/internal/ui/theme"
	coursesview "courseforge/internal/ui/views/courses"
	syllabusview "courseforge/internal/ui/views/syllabus"
)

type view int

const (
	viewCourses view = iota
	viewSyllabus
)

type coursesLoadedMsg struct {
	courses []coursedto.Course
}

type planLoadedMsg struct {
	plan plandto.Plan
}

type errMsg struct {
	err error
}

// Model is the root TUI model. It owns the active view and talks to
// the modules through their inbound ports.
type Model struct {
	catalog coursein.Catalog
	planner planin.Planner

	active   view
	courses  coursesview.Model
	syllabus syllabusview.Model
	styles   theme.Styles

	width  int
	height int
	err    error
}

func New(catalog coursein.Catalog, planner planin.Planner) Model {
	styles := theme.DefaultStyles()
	return Model{
		catalog:  catalog,
		planner:  planner,
		courses:  coursesview.New(styles),
		syllabus: syllabusview.New(styles),
		styles:   styles,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCourses
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.courses.SetHeight(msg.Height - 4)
		m.syllabus.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case coursesLoadedMsg:
		m.err = nil
		m.courses.SetCourses(msg.courses)
		return m, nil

	case planLoadedMsg:
		m.err = nil
		m.syllabus.SetPlan(msg.plan)
		m.active = viewSyllabus
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.active == viewCourses {
				return m, m.loadCourses
			}
		case "enter":
			if m.active == viewCourses {
				if slug := m.courses.Selected(); slug != "" {
					return m, m.loadPlan(slug)
				}
			}
		case "esc":
			if m.active == viewSyllabus {
				m.active = viewCourses
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case viewCourses:
		m.courses, cmd = m.courses.Update(msg)
	case viewSyllabus:
		m.syllabus, cmd = m.syllabus.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var body string
	switch m.active {
	case viewCourses:
		body = m.courses.View()
	case viewSyllabus:
		body = m.syllabus.View()
	}
	status := "enter: open plan  r: reload  q: quit"
	if m.active == viewSyllabus {
		status = "esc: back  q: quit"
	}
	if m.err != nil {
		status = m.styles.Error.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.styles.StatusBar.Render(status))
}

func (m Model) loadCourses() tea.Msg {
	courses, err := m.catalog.List(context.Background())
	if err != nil {
		return errMsg{err: err}
	}
	return coursesLoadedMsg{courses: courses}
}

func (m Model) loadPlan(slug string) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.planner.Get(context.Background(), slug)
		if err != nil {
			return errMsg{err: err}
		}
		return planLoadedMsg{plan: plan}
	}
}
