// Package welcome is the splash shown before onboarding.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adamlaw669/Curio/internal/router"
	"github.com/adamlaw669/Curio/internal/screen"
	"github.com/adamlaw669/Curio/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen fades in the banner and greeting, then hands over to the
// next screen on any key.
type WelcomeScreen struct {
	name         string
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen greeting name. next builds the screen that
// replaces it.
func New(name string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{name: name, next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string
	if w.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width), "")
	}

	greeting := "Welcome to Curio"
	if w.name != "" {
		greeting = "Welcome, " + w.name + "!"
	}
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(greeting),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Let's set up your learning profile."),
	)

	if w.elapsed >= totalDur {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
