// Package app hosts the full-screen terminal flows: a router of screens
// inside a header and footer frame.
package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adamlaw669/Curio/internal/router"
	"github.com/adamlaw669/Curio/internal/screen"
	"github.com/adamlaw669/Curio/internal/ui/layout"
)

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	width  int
	height int
}

// New creates a Model showing root.
func New(root screen.Screen) Model {
	return Model{router: router.New(root)}
}

// Active returns the screen on top of the stack.
func (m Model) Active() screen.Screen {
	return m.router.Active()
}

func (m Model) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.frame())
	return v
}

func (m Model) frame() string {
	active := m.router.Active()
	title, status := "", ""
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run shows root full-screen until it quits.
func Run(root screen.Screen) error {
	_, err := tea.NewProgram(New(root)).Run()
	return err
}
