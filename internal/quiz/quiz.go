// Package quiz holds the end-of-module quizzes and grades attempts at them.
package quiz

import (
	"fmt"
	"math"
	"slices"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// PassPercent is the score at which a quiz counts as mastered.
const PassPercent = 70

// Section is one page of module reading shown before the quiz.
type Section struct {
	Title   string
	Content string
}

// Question is a single multiple-choice question.
type Question struct {
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// Quiz is the reading and questions attached to a module.
type Quiz struct {
	ModuleID  string
	Sections  []Section
	Questions []Question
}

// Answer is the outcome of one question.
type Answer struct {
	Question Question
	Chosen   int // -1 when unanswered
	Correct  bool
}

// Result is a graded quiz attempt.
type Result struct {
	ModuleID     string
	Answers      []Answer
	CorrectCount int
	Total        int
	ScorePercent int
}

// Passed reports whether the attempt reached PassPercent.
func (r Result) Passed() bool { return r.ScorePercent >= PassPercent }

// Grade scores answers, keyed by question index, against q. Missing or
// out-of-range answers count as wrong.
func Grade(q Quiz, answers map[int]int) Result {
	r := Result{ModuleID: q.ModuleID, Total: len(q.Questions)}
	for i, question := range q.Questions {
		chosen, ok := answers[i]
		if !ok || chosen < 0 || chosen >= len(question.Options) {
			chosen = -1
		}
		correct := chosen == question.Correct
		if correct {
			r.CorrectCount++
		}
		r.Answers = append(r.Answers, Answer{Question: question, Chosen: chosen, Correct: correct})
	}
	if r.Total > 0 {
		r.ScorePercent = int(math.Round(float64(r.CorrectCount) / float64(r.Total) * 100))
	}
	return r
}

// Assessments turns the result into one assessment per concept the module
// teaches, all carrying the quiz score. newID supplies assessment ids.
func (r Result) Assessments(mod catalog.Module, studentID, date string, newID func() string) []catalog.Assessment {
	out := make([]catalog.Assessment, 0, len(mod.Concepts))
	for _, conceptID := range mod.Concepts {
		out = append(out, catalog.Assessment{
			ID:        newID(),
			StudentID: studentID,
			ConceptID: conceptID,
			Score:     float64(r.ScorePercent),
			Date:      date,
			ModuleID:  mod.ID,
		})
	}
	return out
}

// Find returns the quiz for moduleID.
func Find(moduleID string) (Quiz, bool) {
	i := slices.IndexFunc(quizzes, func(q Quiz) bool { return q.ModuleID == moduleID })
	if i < 0 {
		return Quiz{}, false
	}
	return clone(quizzes[i]), true
}

// ModuleIDs lists the modules that have a quiz.
func ModuleIDs() []string {
	out := make([]string, len(quizzes))
	for i, q := range quizzes {
		out[i] = q.ModuleID
	}
	return out
}

// Validate checks that every question has options and a valid answer key.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %q has no questions", q.ModuleID)
	}
	for i, question := range q.Questions {
		if len(question.Options) < 2 {
			return fmt.Errorf("quiz %q question %d: need at least two options", q.ModuleID, i+1)
		}
		if question.Correct < 0 || question.Correct >= len(question.Options) {
			return fmt.Errorf("quiz %q question %d: correct index %d out of range", q.ModuleID, i+1, question.Correct)
		}
	}
	return nil
}

func clone(q Quiz) Quiz {
	q.Sections = slices.Clone(q.Sections)
	q.Questions = slices.Clone(q.Questions)
	for i := range q.Questions {
		q.Questions[i].Options = slices.Clone(q.Questions[i].Options)
	}
	return q
}
