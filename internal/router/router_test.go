package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adamlaw669/Curio/internal/screen"
)

type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func titles(r *Router) []string {
	out := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

func sameTitles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		run  func(r *Router)
		want []string
	}{
		{"initial", func(*Router) {}, []string{"welcome"}},
		{"push", func(r *Router) { r.Push(&stubScreen{title: "onboarding"}) }, []string{"welcome", "onboarding"}},
		{"pop", func(r *Router) {
			r.Push(&stubScreen{title: "quiz"})
			r.Pop()
		}, []string{"welcome"}},
		{"pop at bottom", func(r *Router) { r.Pop() }, []string{"welcome"}},
		{"replace root", func(r *Router) { r.Replace(&stubScreen{title: "onboarding"}) }, []string{"onboarding"}},
		{"replace keeps depth", func(r *Router) {
			r.Push(&stubScreen{title: "quiz"})
			r.Replace(&stubScreen{title: "results"})
		}, []string{"welcome", "results"}},
		{"messages", func(r *Router) {
			r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
			r.Update(PushScreenMsg{Screen: &stubScreen{title: "results"}})
			r.Update(PopScreenMsg{})
			r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "review"}})
		}, []string{"welcome", "review"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&stubScreen{title: "welcome"})
			tt.run(r)
			if got := titles(r); !sameTitles(got, tt.want) {
				t.Fatalf("stack = %v, want %v", got, tt.want)
			}
			if r.Depth() != len(tt.want) {
				t.Fatalf("depth = %d, want %d", r.Depth(), len(tt.want))
			}
			if r.Active().Title() != tt.want[len(tt.want)-1] {
				t.Fatalf("active = %q", r.Active().Title())
			}
		})
	}
}

func TestInitRunsOnPushAndReplace(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	pushed := &stubScreen{title: "onboarding"}
	r.Update(PushScreenMsg{Screen: pushed})
	replaced := &stubScreen{title: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: replaced})

	if pushed.inits != 1 || replaced.inits != 1 {
		t.Fatalf("inits = %d/%d, want 1/1", pushed.inits, replaced.inits)
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	root := &stubScreen{title: "welcome"}
	top := &stubScreen{title: "quiz"}
	r := New(root)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	if top.updates != 1 || root.updates != 0 {
		t.Fatalf("updates root=%d top=%d, want 0/1", root.updates, top.updates)
	}
	if r.View(80, 24) != "quiz" {
		t.Fatalf("view = %q", r.View(80, 24))
	}
}
