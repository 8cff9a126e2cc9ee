// Package onboarding implements the four-step student onboarding flow:
// basics, learning style, a short diagnostic and a final review.
package onboarding

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// ErrStepIncomplete is returned when moving past a step whose required
// answers are missing.
var ErrStepIncomplete = errors.New("step incomplete")

var validate = validator.New()

// Step is a wizard page.
type Step int

const (
	StepBasics Step = iota + 1
	StepStyle
	StepDiagnostic
	StepReview
)

// TotalSteps is the number of wizard pages.
const TotalSteps = 4

var stepNames = map[Step]string{
	StepBasics:     "basics",
	StepStyle:      "style",
	StepDiagnostic: "diagnostic",
	StepReview:     "review",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Styles are the selectable content styles.
var Styles = []string{string(catalog.ContentVideo), string(catalog.ContentText), string(catalog.ContentInteractive)}

// TimeBudgets are the selectable daily time budgets, in minutes.
var TimeBudgets = []string{"15-30", "30-60", "60+"}

// Wizard collects onboarding answers one step at a time.
type Wizard struct {
	step       Step
	level      catalog.Level
	goal       string
	timePerDay string
	styles     []string
	answers    map[string]int
}

// New starts a wizard on the basics step.
func New() *Wizard {
	return &Wizard{step: StepBasics, answers: make(map[string]int)}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Progress is the percentage of steps reached, counting the current one.
func (w *Wizard) Progress() float64 {
	return float64(w.step) / TotalSteps * 100
}

// SetLevel records the self-reported level.
func (w *Wizard) SetLevel(l catalog.Level) error {
	switch l {
	case catalog.LevelBeginner, catalog.LevelIntermediate, catalog.LevelAdvanced:
		w.level = l
		return nil
	}
	return fmt.Errorf("unknown level %q", l)
}

// SetGoal records the learning goal.
func (w *Wizard) SetGoal(goal string) { w.goal = goal }

// SetTimePerDay records the daily time budget.
func (w *Wizard) SetTimePerDay(budget string) error {
	if !slices.Contains(TimeBudgets, budget) {
		return fmt.Errorf("unknown time budget %q", budget)
	}
	w.timePerDay = budget
	return nil
}

// ToggleStyle adds style when absent and removes it when present.
func (w *Wizard) ToggleStyle(style string) error {
	if !slices.Contains(Styles, style) {
		return fmt.Errorf("unknown style %q", style)
	}
	if i := slices.Index(w.styles, style); i >= 0 {
		w.styles = slices.Delete(w.styles, i, i+1)
		return nil
	}
	w.styles = append(w.styles, style)
	return nil
}

// SelectedStyles returns the chosen styles in selection order.
func (w *Wizard) SelectedStyles() []string { return slices.Clone(w.styles) }

// Answer records the chosen option for a diagnostic question.
func (w *Wizard) Answer(questionID string, option int) error {
	i := slices.IndexFunc(diagnostic, func(q Question) bool { return q.ID == questionID })
	if i < 0 {
		return fmt.Errorf("unknown question %q", questionID)
	}
	if option < 0 || option >= len(diagnostic[i].Options) {
		return fmt.Errorf("question %q: option %d out of range", questionID, option)
	}
	w.answers[questionID] = option
	return nil
}

// Answered is the number of diagnostic questions answered.
func (w *Wizard) Answered() int { return len(w.answers) }

// StepComplete reports whether the current step has everything it needs.
func (w *Wizard) StepComplete() bool { return w.complete(w.step) }

func (w *Wizard) complete(s Step) bool {
	switch s {
	case StepBasics:
		return w.level != "" && w.goal != "" && w.timePerDay != ""
	case StepStyle:
		return len(w.styles) > 0
	case StepDiagnostic:
		return len(w.answers) == len(diagnostic)
	case StepReview:
		return true
	}
	return false
}

// Next advances one step. It fails with ErrStepIncomplete when the
// current step is unfinished and does nothing on the review step.
func (w *Wizard) Next() error {
	if !w.StepComplete() {
		return fmt.Errorf("%s: %w", w.step, ErrStepIncomplete)
	}
	if w.step < StepReview {
		w.step++
	}
	return nil
}

// Back returns to the previous step; it does nothing on the first.
func (w *Wizard) Back() {
	if w.step > StepBasics {
		w.step--
	}
}

// QuestionResult is the outcome of one diagnostic question.
type QuestionResult struct {
	Question Question
	Chosen   int
	Correct  bool
}

// Result is what a completed onboarding produces.
type Result struct {
	Profile         catalog.StudentProfile
	Diagnostic      []QuestionResult
	DiagnosticScore int // percent correct, rounded
}

// Complete builds the student's profile and diagnostic score. Every
// step before review must be complete.
func (w *Wizard) Complete(userID string) (Result, error) {
	for s := StepBasics; s < StepReview; s++ {
		if !w.complete(s) {
			return Result{}, fmt.Errorf("%s: %w", s, ErrStepIncomplete)
		}
	}

	r := Result{
		Profile: catalog.StudentProfile{
			UserID: userID,
			Level:  w.level,
			Preferences: catalog.Preferences{
				Styles:     slices.Clone(w.styles),
				TimePerDay: w.timePerDay,
			},
			Goals: w.goal,
		},
	}
	if err := validate.Struct(r.Profile); err != nil {
		return Result{}, fmt.Errorf("profile %q: %w", userID, err)
	}

	correct := 0
	for _, q := range diagnostic {
		chosen := w.answers[q.ID]
		ok := chosen == q.Correct
		if ok {
			correct++
		}
		r.Diagnostic = append(r.Diagnostic, QuestionResult{Question: q, Chosen: chosen, Correct: ok})
	}
	r.DiagnosticScore = int(math.Round(float64(correct) / float64(len(diagnostic)) * 100))
	return r, nil
}
