package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamlaw669/Curio/internal/catalog"
)

func filledBasics(t *testing.T) *Wizard {
	t.Helper()
	w := New()
	require.NoError(t, w.SetLevel(catalog.LevelIntermediate))
	w.SetGoal("Pass the algebra final")
	require.NoError(t, w.SetTimePerDay("30-60"))
	return w
}

func answerAll(t *testing.T, w *Wizard, option int) {
	t.Helper()
	for _, q := range Questions() {
		require.NoError(t, w.Answer(q.ID, option))
	}
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 5)

	cat := catalog.Default()
	for _, q := range qs {
		assert.Len(t, q.Options, 4)
		_, ok := cat.FindConcept(q.ConceptID)
		assert.True(t, ok, "question %s targets unknown concept %s", q.ID, q.ConceptID)
	}
}

func TestWizard_StepGating(t *testing.T) {
	w := New()
	assert.Equal(t, StepBasics, w.Step())
	assert.Equal(t, 25.0, w.Progress())

	err := w.Next()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepBasics, w.Step())

	w = filledBasics(t)
	require.NoError(t, w.Next())
	assert.Equal(t, StepStyle, w.Step())

	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)
	require.NoError(t, w.ToggleStyle("video"))
	require.NoError(t, w.Next())
	assert.Equal(t, StepDiagnostic, w.Step())

	require.NoError(t, w.Answer("algebra1", 0))
	assert.False(t, w.StepComplete())
	answerAll(t, w, 1)
	assert.Equal(t, 5, w.Answered())
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())
	assert.Equal(t, 100.0, w.Progress())

	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step(), "review is the last step")
}

func TestWizard_Back(t *testing.T) {
	w := filledBasics(t)
	w.Back()
	assert.Equal(t, StepBasics, w.Step())

	require.NoError(t, w.Next())
	w.Back()
	assert.Equal(t, StepBasics, w.Step())
}

func TestWizard_ToggleStyle(t *testing.T) {
	w := New()
	require.NoError(t, w.ToggleStyle("video"))
	require.NoError(t, w.ToggleStyle("interactive"))
	require.NoError(t, w.ToggleStyle("video"))
	assert.Equal(t, []string{"interactive"}, w.SelectedStyles())

	assert.Error(t, w.ToggleStyle("podcast"))
}

func TestWizard_InvalidInput(t *testing.T) {
	w := New()
	assert.Error(t, w.SetLevel("expert"))
	assert.Error(t, w.SetTimePerDay("all day"))
	assert.Error(t, w.Answer("nope", 0))
	assert.Error(t, w.Answer("algebra1", 4))
	assert.Error(t, w.Answer("algebra1", -1))
}

func TestWizard_Complete(t *testing.T) {
	w := filledBasics(t)
	require.NoError(t, w.ToggleStyle("text"))
	require.NoError(t, w.ToggleStyle("interactive"))
	answerAll(t, w, 0)
	require.NoError(t, w.Answer("equations", 2))

	r, err := w.Complete("std-1")
	require.NoError(t, err)

	assert.Equal(t, catalog.StudentProfile{
		UserID: "std-1",
		Level:  catalog.LevelIntermediate,
		Preferences: catalog.Preferences{
			Styles:     []string{"text", "interactive"},
			TimePerDay: "30-60",
		},
		Goals: "Pass the algebra final",
	}, r.Profile)
	assert.Equal(t, 80, r.DiagnosticScore)
	require.Len(t, r.Diagnostic, 5)
	assert.False(t, r.Diagnostic[4].Correct)
	assert.Equal(t, 2, r.Diagnostic[4].Chosen)

	assert.NoError(t, catalog.Default().UpsertProfile(r.Profile))
}

func TestWizard_CompleteRequiresEarlierSteps(t *testing.T) {
	w := filledBasics(t)
	answerAll(t, w, 0)

	_, err := w.Complete("std-1")
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Contains(t, err.Error(), "style")
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "diagnostic", StepDiagnostic.String())
	assert.Equal(t, "step(9)", Step(9).String())
}
