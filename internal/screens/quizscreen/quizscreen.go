// Package quizscreen runs a module's reading material and quiz in the
// terminal.
package quizscreen

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adamlaw669/Curio/internal/quiz"
	"github.com/adamlaw669/Curio/internal/screen"
	"github.com/adamlaw669/Curio/internal/ui/components"
	"github.com/adamlaw669/Curio/internal/ui/layout"
	"github.com/adamlaw669/Curio/internal/ui/render"
	"github.com/adamlaw669/Curio/internal/ui/theme"
)

type phase int

const (
	phaseReading phase = iota
	phaseAnswering
	phaseResults
)

// QuizScreen walks through a module's sections, asks its questions and
// shows the graded result.
type QuizScreen struct {
	title    string
	quiz     quiz.Quiz
	onFinish func(quiz.Result)

	phase    phase
	section  int
	question int
	choice   components.MultiChoice
	answers  map[int]int
	result   quiz.Result
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a quiz screen. onFinish runs once, when the quiz is graded.
func New(title string, q quiz.Quiz, onFinish func(quiz.Result)) *QuizScreen {
	s := &QuizScreen{title: title, quiz: q, onFinish: onFinish, answers: make(map[int]int)}
	if len(q.Sections) == 0 {
		s.startQuestions()
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string { return s.title }

// Status shows where the learner is.
func (s *QuizScreen) Status() string {
	switch s.phase {
	case phaseReading:
		return fmt.Sprintf("Section %d/%d  ", s.section+1, len(s.quiz.Sections))
	case phaseAnswering:
		return fmt.Sprintf("Question %d/%d  ", s.question+1, len(s.quiz.Questions))
	}
	return fmt.Sprintf("%d%%  ", s.result.ScorePercent)
}

// KeyHints implements screen.KeyHintProvider.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseReading:
		return []layout.KeyHint{
			{Key: "←", Description: "Previous"},
			{Key: "→/Enter", Description: "Next"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "A-D", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return []layout.KeyHint{{Key: "Enter/q", Description: "Done"}}
}

// Result returns the graded result; the bool is false until the quiz
// has been graded.
func (s *QuizScreen) Result() (quiz.Result, bool) {
	return s.result, s.phase == phaseResults
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseReading:
		switch key.String() {
		case "left", "h":
			if s.section > 0 {
				s.section--
			}
		case "right", "l", "enter":
			if s.section < len(s.quiz.Sections)-1 {
				s.section++
			} else {
				s.startQuestions()
			}
		}

	case phaseAnswering:
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			s.answers[s.question] = s.choice.ChosenIndex
			s.question++
			if s.question < len(s.quiz.Questions) {
				s.loadQuestion()
			} else {
				s.finish()
			}
		}

	case phaseResults:
		switch key.String() {
		case "enter", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *QuizScreen) startQuestions() {
	s.phase = phaseAnswering
	s.question = 0
	if len(s.quiz.Questions) == 0 {
		s.finish()
		return
	}
	s.loadQuestion()
}

func (s *QuizScreen) loadQuestion() {
	q := s.quiz.Questions[s.question]
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.Correct)
}

func (s *QuizScreen) finish() {
	s.result = quiz.Grade(s.quiz, s.answers)
	s.phase = phaseResults
	if s.onFinish != nil {
		s.onFinish(s.result)
	}
}

func (s *QuizScreen) View(width, height int) string {
	var body string
	switch s.phase {
	case phaseReading:
		sec := s.quiz.Sections[s.section]
		body = theme.Title.Render(sec.Title) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 72)).Render(sec.Content)
	case phaseAnswering:
		bar := components.NewProgressBar("",
			float64(s.question)/float64(len(s.quiz.Questions))*100, false, min(width-8, 40))
		body = bar.View() + "\n\n" + s.choice.View()
	default:
		body = render.Renderer{Color: true}.QuizResult(s.result)
	}
	return lipgloss.NewStyle().Padding(1, 4).Render(strings.TrimRight(body, "\n"))
}
