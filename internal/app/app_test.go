package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adamlaw669/Curio/internal/router"
	"github.com/adamlaw669/Curio/internal/screen"
	"github.com/adamlaw669/Curio/internal/ui/layout"
)

type stubScreen struct {
	title string
	keys  []string
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "body of " + s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) Status() string       { return "2/4" }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Tab", Description: "Continue"}}
}

func TestUpdate_ForwardsKeys(t *testing.T) {
	root := &stubScreen{title: "root"}
	m := New(root)

	m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if len(root.keys) != 1 || root.keys[0] != "a" {
		t.Fatalf("expected key forwarded, got %v", root.keys)
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := New(&stubScreen{title: "root"})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected QuitMsg")
	}
}

func TestUpdate_EscPopsPushedScreen(t *testing.T) {
	m := New(&stubScreen{title: "root"})
	m.Update(router.PushScreenMsg{Screen: &stubScreen{title: "child"}})
	if m.Active().Title() != "child" {
		t.Fatalf("expected child active, got %q", m.Active().Title())
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	m.Update(cmd())
	if m.Active().Title() != "root" {
		t.Fatalf("expected root active, got %q", m.Active().Title())
	}
}

func TestView(t *testing.T) {
	m := New(&stubScreen{title: "Quiz"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	frame := updated.(Model).frame()

	for _, want := range []string{"Curio", "Quiz", "2/4", "body of Quiz", "Continue"} {
		if !strings.Contains(frame, want) {
			t.Errorf("expected frame to contain %q", want)
		}
	}
}
