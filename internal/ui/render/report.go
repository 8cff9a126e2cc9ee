package render

import (
	"fmt"
	"strings"

	"github.com/adamlaw669/Curio/internal/analytics"
	"github.com/adamlaw669/Curio/internal/appstate"
	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/quiz"
	"github.com/adamlaw669/Curio/internal/ui/components"
	"github.com/adamlaw669/Curio/internal/ui/theme"
)

const barWidth = 46

func (r Renderer) bar(cs analytics.ConceptScore) string {
	label := pad(cs.Concept.Name, 22)
	if !r.Color {
		return fmt.Sprintf("  %s %5s  %s", label, Mastery(cs.Score, cs.HasData), cs.Band.Label())
	}
	p := components.NewProgressBar(label, cs.Score, true, barWidth)
	p.Fill = bandColor(cs.Band)
	return "  " + p.View()
}

// StudentReport renders an instructor's view of one student.
func (r Renderer) StudentReport(rep analytics.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", r.heading(rep.Student.Name), r.dim(rep.Student.ID))
	if rep.AtRisk {
		b.WriteString("  " + r.paint(theme.Warning, "At risk") + "\n")
	}
	b.WriteString("\n")

	r.field(&b, "Average score", Mastery(rep.AverageScore, rep.AssessmentCount > 0))
	r.field(&b, "Assessments", rep.AssessmentCount)
	r.field(&b, "Engagement", fmt.Sprintf("%d min", rep.EngagementMins))
	if p := rep.Profile; p != nil {
		r.field(&b, "Level", p.Level)
		if len(p.Preferences.Styles) > 0 {
			r.field(&b, "Prefers", strings.Join(p.Preferences.Styles, ", "))
		}
		if p.Goals != "" {
			r.field(&b, "Goals", p.Goals)
		}
	}

	b.WriteString("\n" + r.heading("Concept mastery") + "\n")
	for _, cs := range rep.Concepts {
		b.WriteString(r.bar(cs) + "\n")
	}

	r.areas(&b, "Needs attention", rep.WeakAreas)
	r.areas(&b, "Strengths", rep.StrongAreas)

	if len(rep.Timeline) > 0 {
		b.WriteString("\n" + r.heading("Recent assessments") + "\n")
		for _, a := range rep.Timeline {
			fmt.Fprintf(&b, "  %s  %s %5.0f\n", a.Date, pad(a.ConceptID, 24), a.Score)
		}
	}
	return b.String()
}

func (r Renderer) areas(b *strings.Builder, title string, areas []analytics.ConceptScore) {
	if len(areas) == 0 {
		return
	}
	b.WriteString("\n" + r.heading(title) + "\n")
	for _, cs := range areas {
		fmt.Fprintf(b, "  • %s (%s)\n", cs.Concept.Name, Mastery(cs.Score, cs.HasData))
	}
}

// CohortSummary renders a cohort's headline numbers.
func (r Renderer) CohortSummary(sum analytics.CohortSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", r.heading(sum.Cohort.Name), r.dim(sum.Cohort.ID))
	if sum.Cohort.Description != "" {
		b.WriteString("  " + sum.Cohort.Description + "\n")
	}
	b.WriteString("\n")

	instructor := sum.Cohort.InstructorID
	if sum.Instructor.Name != "" {
		instructor = sum.Instructor.Name
	}
	r.field(&b, "Instructor", instructor)
	r.field(&b, "Students", sum.MemberCount)
	r.field(&b, "At risk", sum.AtRiskCount)
	r.field(&b, "Average score", Score(sum.AverageScore))
	r.field(&b, "Engagement", fmt.Sprintf("%d min", sum.EngagementMins))
	r.missing(&b, sum.Missing)
	return b.String()
}

// AtRisk renders the at-risk list. Ids that resolve to no user are shown
// as-is.
func (r Renderer) AtRisk(cohortName string, ids []string, find func(string) (catalog.User, bool)) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", r.heading(cohortName), r.dim("at-risk students"))
	if len(ids) == 0 {
		b.WriteString("  No students at risk.\n")
		return b.String()
	}
	for _, id := range ids {
		name := r.dim("(unknown)")
		if u, ok := find(id); ok {
			name = u.Name
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", r.paint(theme.Warning, "!"), pad(id, 12), name)
	}
	return b.String()
}

// Recommendations renders recommendations with their module titles.
func (r Renderer) Recommendations(recs []catalog.Recommendation, find func(string) (catalog.Module, bool)) string {
	if len(recs) == 0 {
		return "  No recommendations.\n"
	}
	var b strings.Builder
	for _, rec := range recs {
		title := rec.ModuleID
		detail := ""
		if m, ok := find(rec.ModuleID); ok {
			title = m.Title
			detail = fmt.Sprintf("%s · %s · %d min", m.ContentType, m.Difficulty, m.EstTimeMins)
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", r.paint(theme.Selected, fmt.Sprintf("P%d", rec.Priority)), title, r.dim(detail))
		if rec.Reason != "" {
			fmt.Fprintf(&b, "     %s\n", rec.Reason)
		}
	}
	return b.String()
}

// Session renders the signed-in session and its derived numbers.
func (r Renderer) Session(h *appstate.Holder) string {
	s := h.Snapshot()
	var b strings.Builder
	if s.CurrentUser == nil {
		b.WriteString("  Not signed in.\n")
		r.field(&b, "Performance", s.PerformanceState)
		return b.String()
	}

	fmt.Fprintf(&b, "%s  %s\n\n", r.heading(s.CurrentUser.Name), r.dim(string(s.CurrentUser.Role)))
	r.field(&b, "User", s.CurrentUser.ID)
	r.field(&b, "Performance", s.PerformanceState)
	if avg, ok := h.AverageScoreOK(); ok {
		r.field(&b, "Average score", fmt.Sprintf("%.0f", avg))
	} else {
		r.field(&b, "Average score", "–")
	}
	r.field(&b, "Engagement", fmt.Sprintf("%d min", h.TotalEngagementMinutes()))

	week := h.WeeklyEngagementSeries()
	cells := make([]string, len(week))
	for i, m := range week {
		cells[i] = fmt.Sprintf("%d", m)
	}
	r.field(&b, "Last 7 days", strings.Join(cells, " "))
	return b.String()
}

// QuizResult renders a graded quiz with explanations.
func (r Renderer) QuizResult(res quiz.Result) string {
	var b strings.Builder
	headline := "Good effort!"
	style := theme.Warning
	if res.Passed() {
		headline, style = "Great job!", theme.Correct
	}
	fmt.Fprintf(&b, "%s  You scored %d out of %d (%d%%)\n\n",
		r.paint(style, headline), res.CorrectCount, res.Total, res.ScorePercent)

	for i, a := range res.Answers {
		mark, markStyle := "✗", theme.Incorrect
		if a.Correct {
			mark, markStyle = "✓", theme.Correct
		}
		fmt.Fprintf(&b, "  %s %d. %s\n", r.paint(markStyle, mark), i+1, a.Question.Prompt)
		if !a.Correct {
			yours := "no answer"
			if a.Chosen >= 0 {
				yours = a.Question.Options[a.Chosen]
			}
			fmt.Fprintf(&b, "     Your answer: %s · Correct: %s\n", yours, a.Question.Options[a.Question.Correct])
		}
		if a.Question.Explanation != "" {
			for _, line := range strings.Split(a.Question.Explanation, "\n") {
				b.WriteString("     " + r.dim(line) + "\n")
			}
		}
	}
	return b.String()
}
