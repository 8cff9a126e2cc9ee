// Package onboardscreen drives the onboarding wizard in the terminal.
package onboardscreen

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/onboarding"
	"github.com/adamlaw669/Curio/internal/screen"
	"github.com/adamlaw669/Curio/internal/ui/components"
	"github.com/adamlaw669/Curio/internal/ui/layout"
	"github.com/adamlaw669/Curio/internal/ui/theme"
)

// Fields of the basics step, in focus order.
const (
	fieldLevel = iota
	fieldGoal
	fieldTime
)

// OnboardScreen collects a student's level, goal, time budget, preferred
// styles and diagnostic answers, then reports the completed result.
type OnboardScreen struct {
	userID     string
	wizard     *onboarding.Wizard
	onComplete func(onboarding.Result)

	field     int
	levelMenu components.Menu
	goal      components.TextInput
	timeMenu  components.Menu
	styleMenu components.Menu

	questions []onboarding.Question
	question  int
	choice    components.MultiChoice

	result *onboarding.Result
	err    string
}

var _ screen.Screen = (*OnboardScreen)(nil)

// New creates an onboarding screen for userID. onComplete runs once the
// review step is confirmed.
func New(userID string, onComplete func(onboarding.Result)) *OnboardScreen {
	s := &OnboardScreen{
		userID:     userID,
		wizard:     onboarding.New(),
		onComplete: onComplete,
		levelMenu: components.NewMenu([]components.MenuItem{
			{Label: "Beginner: just getting started", Value: string(catalog.LevelBeginner)},
			{Label: "Intermediate: comfortable with basics", Value: string(catalog.LevelIntermediate)},
			{Label: "Advanced: ready for a challenge", Value: string(catalog.LevelAdvanced)},
		}),
		goal: components.NewTextInput("e.g. Improve my algebra skills", 200),
		timeMenu: components.NewMenu([]components.MenuItem{
			{Label: "15-30 minutes", Value: "15-30"},
			{Label: "30-60 minutes", Value: "30-60"},
			{Label: "60+ minutes", Value: "60+"},
		}),
		styleMenu: components.NewMultiMenu([]components.MenuItem{
			{Label: "Video lessons", Value: "video"},
			{Label: "Reading material", Value: "text"},
			{Label: "Interactive exercises", Value: "interactive"},
		}),
		questions: onboarding.Questions(),
	}
	s.loadQuestion()
	return s
}

func (s *OnboardScreen) Init() tea.Cmd { return nil }

func (s *OnboardScreen) Title() string { return "Welcome to Curio" }

// Status shows the wizard step.
func (s *OnboardScreen) Status() string {
	return fmt.Sprintf("Step %d/%d  ", s.wizard.Step(), onboarding.TotalSteps)
}

// Result returns the completed onboarding, if any.
func (s *OnboardScreen) Result() (onboarding.Result, bool) {
	if s.result == nil {
		return onboarding.Result{}, false
	}
	return *s.result, true
}

// KeyHints implements screen.KeyHintProvider.
func (s *OnboardScreen) KeyHints() []layout.KeyHint {
	switch s.wizard.Step() {
	case onboarding.StepBasics:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Tab", Description: "Next field"},
		}
	case onboarding.StepStyle:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Tab", Description: "Continue"},
			{Key: "Shift+Tab", Description: "Back"},
		}
	case onboarding.StepDiagnostic:
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Finish"},
		{Key: "Shift+Tab", Description: "Back"},
	}
}

func (s *OnboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.result != nil {
		return s, tea.Quit
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.wizard.Step() == onboarding.StepBasics && s.field == fieldGoal {
			var cmd tea.Cmd
			s.goal, cmd = s.goal.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if key.String() == "shift+tab" && s.wizard.Step() != onboarding.StepDiagnostic {
		s.back()
		return s, nil
	}

	switch s.wizard.Step() {
	case onboarding.StepBasics:
		return s, s.updateBasics(key)
	case onboarding.StepStyle:
		s.updateStyle(key)
	case onboarding.StepDiagnostic:
		s.updateDiagnostic(key)
	case onboarding.StepReview:
		if key.String() == "enter" {
			return s, s.complete()
		}
	}
	return s, nil
}

func (s *OnboardScreen) updateBasics(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "tab":
		s.field = (s.field + 1) % 3
		return nil
	}

	switch s.field {
	case fieldLevel:
		s.levelMenu, _ = s.levelMenu.Update(key)
		if v, ok := s.levelMenu.Value(); ok && key.String() == "enter" {
			_ = s.wizard.SetLevel(catalog.Level(v))
			s.field = fieldGoal
		}
	case fieldGoal:
		if key.String() == "enter" {
			s.wizard.SetGoal(s.goal.Value())
			s.field = fieldTime
			return nil
		}
		var cmd tea.Cmd
		s.goal, cmd = s.goal.Update(key)
		s.wizard.SetGoal(s.goal.Value())
		return cmd
	case fieldTime:
		s.timeMenu, _ = s.timeMenu.Update(key)
		if v, ok := s.timeMenu.Value(); ok && key.String() == "enter" {
			_ = s.wizard.SetTimePerDay(v)
			s.next()
		}
	}
	return nil
}

func (s *OnboardScreen) updateStyle(key tea.KeyMsg) {
	if key.String() == "tab" {
		s.next()
		return
	}
	before := s.styleMenu.Checked()
	s.styleMenu, _ = s.styleMenu.Update(key)
	if after := s.styleMenu.Checked(); len(after) != len(before) {
		_ = s.wizard.ToggleStyle(s.styleMenu.Items[s.styleMenu.Selected].Value)
	}
}

func (s *OnboardScreen) updateDiagnostic(key tea.KeyMsg) {
	s.choice, _ = s.choice.Update(key)
	if !s.choice.Submitted {
		return
	}
	_ = s.wizard.Answer(s.questions[s.question].ID, s.choice.ChosenIndex)
	if s.question < len(s.questions)-1 {
		s.question++
		s.loadQuestion()
		return
	}
	s.next()
}

func (s *OnboardScreen) loadQuestion() {
	q := s.questions[s.question]
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.Correct)
}

func (s *OnboardScreen) next() {
	s.err = ""
	if err := s.wizard.Next(); err != nil {
		if errors.Is(err, onboarding.ErrStepIncomplete) {
			s.err = incompleteHint(s.wizard.Step())
			return
		}
		s.err = err.Error()
	}
}

func (s *OnboardScreen) back() {
	s.err = ""
	s.wizard.Back()
	if s.wizard.Step() == onboarding.StepDiagnostic {
		// Answers stay recorded; start over so every question is seen again.
		s.question = 0
		s.loadQuestion()
	}
}

func (s *OnboardScreen) complete() tea.Cmd {
	res, err := s.wizard.Complete(s.userID)
	if err != nil {
		s.err = err.Error()
		return nil
	}
	s.result = &res
	if s.onComplete != nil {
		s.onComplete(res)
	}
	return tea.Quit
}

func incompleteHint(step onboarding.Step) string {
	switch step {
	case onboarding.StepBasics:
		return "Choose a level, enter a goal and pick a daily time budget."
	case onboarding.StepStyle:
		return "Pick at least one learning style."
	}
	return "Answer every question to continue."
}

func (s *OnboardScreen) View(width, height int) string {
	var b strings.Builder
	bar := components.NewProgressBar("", s.wizard.Progress(), false, min(width-8, 40))
	b.WriteString(bar.View() + "\n\n")

	switch s.wizard.Step() {
	case onboarding.StepBasics:
		b.WriteString(s.fieldTitle(fieldLevel, "What's your current math level?") + "\n")
		b.WriteString(s.levelMenu.View() + "\n")
		b.WriteString(s.fieldTitle(fieldGoal, "What would you like to achieve?") + "\n")
		b.WriteString("  " + s.goal.View() + "\n\n")
		b.WriteString(s.fieldTitle(fieldTime, "How much time can you study each day?") + "\n")
		b.WriteString(s.timeMenu.View())
	case onboarding.StepStyle:
		b.WriteString(theme.Title.Render("How do you like to learn?") + "\n")
		b.WriteString(theme.Hint.Render("Select all that apply") + "\n\n")
		b.WriteString(s.styleMenu.View())
	case onboarding.StepDiagnostic:
		q := s.questions[s.question]
		b.WriteString(theme.Title.Render("Quick diagnostic") + "  ")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %d of %d", q.Concept, s.question+1, len(s.questions))) + "\n\n")
		b.WriteString(s.choice.View())
	case onboarding.StepReview:
		b.WriteString(theme.Title.Render("Review your profile") + "\n\n")
		b.WriteString(s.review())
	}

	if s.err != "" {
		b.WriteString("\n" + theme.Warning.Render(s.err) + "\n")
	}
	return lipgloss.NewStyle().Padding(1, 4).Render(strings.TrimRight(b.String(), "\n"))
}

func (s *OnboardScreen) fieldTitle(field int, text string) string {
	if s.field == field {
		return theme.Title.Render(text)
	}
	return theme.Subtitle.Render(text)
}

func (s *OnboardScreen) review() string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(theme.Label.Render(label) + " " + value + "\n")
	}
	level, _ := s.levelMenu.Value()
	budget, _ := s.timeMenu.Value()
	row("Level", level)
	row("Goal", s.goal.Value())
	row("Daily time", budget+" minutes")
	row("Styles", strings.Join(s.wizard.SelectedStyles(), ", "))
	row("Diagnostic", fmt.Sprintf("%d of %d answered", s.wizard.Answered(), len(s.questions)))
	return b.String()
}
