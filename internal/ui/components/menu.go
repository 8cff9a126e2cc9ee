package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adamlaw669/Curio/internal/ui/theme"
)

// MenuItem is one row of a Menu. Checked marks toggled items in
// multi-select menus.
type MenuItem struct {
	Label   string
	Value   string
	Checked bool
}

// Menu is a vertical list with a cursor. In Multi mode enter and space
// toggle the item under the cursor; otherwise enter chooses it.
type Menu struct {
	Items    []MenuItem
	Selected int
	Multi    bool
	Chosen   int // -1 until an item is chosen in single mode
}

// NewMenu creates a single-select menu.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items, Chosen: -1}
}

// NewMultiMenu creates a multi-select menu.
func NewMultiMenu(items []MenuItem) Menu {
	return Menu{Items: items, Multi: true, Chosen: -1}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter", "space", " ":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if m.Multi {
			m.Items[m.Selected].Checked = !m.Items[m.Selected].Checked
		} else {
			m.Chosen = m.Selected
		}
	}

	return m, nil
}

// Value returns the chosen item's value in single mode.
func (m Menu) Value() (string, bool) {
	if m.Chosen < 0 || m.Chosen >= len(m.Items) {
		return "", false
	}
	return m.Items[m.Chosen].Value, true
}

// Checked returns the values of checked items in multi mode.
func (m Menu) Checked() []string {
	var out []string
	for _, it := range m.Items {
		if it.Checked {
			out = append(out, it.Value)
		}
	}
	return out
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		cursor := "    "
		if i == m.Selected {
			cursor = "  ▸ "
		}
		label := item.Label
		if m.Multi {
			box := "[ ] "
			if item.Checked {
				box = "[x] "
			}
			label = box + label
		} else if i == m.Chosen {
			label += "  ✓"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Selected {
			style = theme.Selected
		}
		b.WriteString(style.Render(cursor+label) + "\n")
	}
	return b.String()
}
