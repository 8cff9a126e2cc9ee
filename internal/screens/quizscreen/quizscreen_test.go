package quizscreen

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adamlaw669/Curio/internal/quiz"
)

func keyMsg(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func geometry(t *testing.T) quiz.Quiz {
	t.Helper()
	q, ok := quiz.Find("geometry-basics")
	if !ok {
		t.Fatal("geometry-basics quiz missing")
	}
	return q
}

func TestReadingNavigation(t *testing.T) {
	s := New("Geometry Basics", geometry(t), nil)

	if !strings.Contains(s.View(80, 20), "What is Geometry?") {
		t.Fatal("expected first section")
	}
	s.Update(specialKey(tea.KeyLeft))
	if s.section != 0 {
		t.Fatalf("expected to stay on first section, got %d", s.section)
	}

	s.Update(specialKey(tea.KeyRight))
	if !strings.Contains(s.View(80, 20), "Basic Shapes") {
		t.Fatal("expected second section")
	}
	if s.Status() != "Section 2/3  " {
		t.Fatalf("unexpected status %q", s.Status())
	}
	s.Update(specialKey(tea.KeyLeft))
	if s.section != 0 {
		t.Fatalf("expected first section, got %d", s.section)
	}
}

func TestFullRun(t *testing.T) {
	var got *quiz.Result
	s := New("Geometry Basics", geometry(t), func(r quiz.Result) { got = &r })

	for range 3 {
		s.Update(specialKey(tea.KeyEnter))
	}
	if s.phase != phaseAnswering {
		t.Fatalf("expected answering phase, got %d", s.phase)
	}
	if !strings.Contains(s.View(80, 20), "rectangle with length 8") {
		t.Fatal("expected first question")
	}

	s.Update(keyMsg('a'))
	s.Update(keyMsg('b'))
	s.Update(keyMsg('a'))

	if got == nil {
		t.Fatal("expected onFinish to run")
	}
	if got.CorrectCount != 2 || got.ScorePercent != 67 {
		t.Fatalf("unexpected result: %d correct, %d%%", got.CorrectCount, got.ScorePercent)
	}
	r, ok := s.Result()
	if !ok || r.ScorePercent != 67 {
		t.Fatalf("expected graded result, got %v %v", r, ok)
	}
	if !strings.Contains(s.View(100, 40), "You scored 2 out of 3") {
		t.Fatal("expected results view")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected QuitMsg")
	}
}

func TestArrowAndEnterAnswering(t *testing.T) {
	q := geometry(t)
	q.Sections = nil
	s := New("Geometry Basics", q, nil)

	if s.phase != phaseAnswering {
		t.Fatal("expected a quiz without sections to start on questions")
	}
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	if s.answers[0] != 1 {
		t.Fatalf("expected option 1 recorded, got %d", s.answers[0])
	}
	if s.question != 1 {
		t.Fatalf("expected second question, got %d", s.question)
	}
	if _, ok := s.Result(); ok {
		t.Fatal("expected no result before the last answer")
	}
}

func TestEmptyQuizGradesImmediately(t *testing.T) {
	called := false
	s := New("Empty", quiz.Quiz{ModuleID: "empty"}, func(quiz.Result) { called = true })
	if !called {
		t.Fatal("expected onFinish for empty quiz")
	}
	if _, ok := s.Result(); !ok {
		t.Fatal("expected result")
	}
}
