package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/adamlaw669/Curio/internal/ui/layout"
)

// Screen is one full-window view driven by the app's router.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen supply the header's right-hand status,
// such as wizard progress.
type StatusProvider interface {
	Status() string
}
