package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func key(code rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: code} }

func TestMultiChoice_Navigate(t *testing.T) {
	m := NewMultiChoice("2+2?", []string{"3", "4", "5"}, 1)

	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 2 {
		t.Fatalf("selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyUp))
	m, _ = m.Update(key(tea.KeyEnter))

	if !m.Submitted || m.ChosenIndex != 1 || !m.IsCorrect() {
		t.Fatalf("unexpected state: %+v", m)
	}

	// Submitted components ignore further input.
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 1 {
		t.Fatalf("selection moved after submit")
	}
}

func TestMultiChoice_LetterKey(t *testing.T) {
	m := NewMultiChoice("q", []string{"a", "b", "c", "d"}, 0)
	m, _ = m.Update(key('c'))
	if m.ChosenIndex != 2 || m.IsCorrect() {
		t.Fatalf("chosen = %d", m.ChosenIndex)
	}

	m = NewMultiChoice("q", []string{"a", "b"}, 0)
	m, _ = m.Update(key('z'))
	if m.Submitted {
		t.Fatal("out-of-range letter should be ignored")
	}
}

func TestMultiChoice_View(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"red", "blue"}, 0)
	v := m.View()
	for _, want := range []string{"Pick one", "A)  red", "B)  blue", "▸"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestMenu_Single(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Beginner", Value: "beginner"}, {Label: "Advanced", Value: "advanced"}})
	if _, ok := m.Value(); ok {
		t.Fatal("expected no value before choosing")
	}
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyEnter))
	if v, ok := m.Value(); !ok || v != "advanced" {
		t.Fatalf("value = %q, %v", v, ok)
	}
}

func TestMenu_Multi(t *testing.T) {
	m := NewMultiMenu([]MenuItem{{Label: "Video", Value: "video"}, {Label: "Text", Value: "text"}})
	m, _ = m.Update(key(tea.KeyEnter))
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyEnter))
	m, _ = m.Update(key(tea.KeyUp))
	m, _ = m.Update(key(tea.KeyEnter))

	got := m.Checked()
	if len(got) != 1 || got[0] != "text" {
		t.Fatalf("checked = %v", got)
	}
	if !strings.Contains(m.View(), "[x] Text") {
		t.Errorf("view should show checked box:\n%s", m.View())
	}
}

func TestProgressBar(t *testing.T) {
	for _, pct := range []float64{-10, 0, 45, 100, 140} {
		bar := NewProgressBar("", pct, true, 30).View()
		if w := lipgloss.Width(bar); w != 30 {
			t.Errorf("width at %v%% = %d, want 30", pct, w)
		}
	}
	if !strings.Contains(NewProgressBar("Algebra", 45, true, 40).View(), "45%") {
		t.Error("expected percent label")
	}
}
