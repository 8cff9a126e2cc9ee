package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/app"
	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/quiz"
	"github.com/adamlaw669/Curio/internal/screens/quizscreen"
)

func newQuizCmd() *cobra.Command {
	quizCmd := &cobra.Command{
		Use:   "quiz [module-id]",
		Short: "Work through a module and take its quiz",
		Long: "Without a module id, lists the modules that have quizzes. The graded " +
			"result is recorded as one assessment per concept the module teaches.",
		Args: cobra.MaximumNArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, id := range quiz.ModuleIDs() {
					title := id
					if m, ok := e.cat.FindModule(id); ok {
						title = m.Title
					}
					fmt.Fprintf(e.out, "%-20s %s\n", id, title)
				}
				return nil
			}

			mod, ok := e.cat.FindModule(args[0])
			if !ok {
				return fmt.Errorf("module %q not found", args[0])
			}
			q, ok := quiz.Find(mod.ID)
			if !ok {
				return fmt.Errorf("module %q has no quiz", mod.ID)
			}

			var who []string
			if s, _ := cmd.Flags().GetString("student"); s != "" {
				who = []string{s}
			}
			u, err := e.studentArg(who)
			if err != nil {
				return err
			}

			minutes, _ := cmd.Flags().GetInt("minutes")
			var res quiz.Result
			if raw, _ := cmd.Flags().GetString("answers"); raw != "" {
				answers, err := parseAnswers(raw)
				if err != nil {
					return err
				}
				res = quiz.Grade(q, answers)
			} else {
				start := e.now()
				graded := false
				if err := app.Run(quizscreen.New(mod.Title, q, func(r quiz.Result) {
					res, graded = r, true
				})); err != nil {
					return err
				}
				if !graded {
					fmt.Fprintln(e.out, "Quiz abandoned; nothing recorded.")
					return nil
				}
				if minutes == 0 {
					minutes = max(int(math.Ceil(e.now().Sub(start).Minutes())), 1)
				}
			}

			if err := recordQuiz(e, mod, u, res, minutes); err != nil {
				return err
			}
			fmt.Fprint(e.out, e.render.QuizResult(res))
			return nil
		}),
	}
	quizCmd.Flags().StringP("student", "s", "", "Student id (defaults to the signed-in user)")
	quizCmd.Flags().String("answers", "", `Answer without the interactive screen, e.g. "a,b,c" or "0,1,2"`)
	quizCmd.Flags().Int("minutes", 0, "Minutes to record as engagement")
	return quizCmd
}

func recordQuiz(e *env, mod catalog.Module, u catalog.User, res quiz.Result, minutes int) error {
	date := e.today()
	for _, a := range res.Assessments(mod, u.ID, date, func() string { return "assess-" + e.newID() }) {
		if err := e.recordAssessment(a); err != nil {
			return err
		}
	}
	if minutes > 0 {
		if err := e.recordEngagement(catalog.Engagement{StudentID: u.ID, Date: date, Minutes: minutes, ModuleID: mod.ID}); err != nil {
			return err
		}
	}
	e.log.Debug("quiz recorded", "student", u.ID, "module", mod.ID, "score", res.ScorePercent)
	return nil
}

// parseAnswers reads a comma-separated answer list. Each answer is an
// option letter or a zero-based index; "-" or an empty entry skips the
// question.
func parseAnswers(raw string) (map[int]int, error) {
	out := make(map[int]int)
	for i, tok := range strings.Split(raw, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		switch {
		case tok == "" || tok == "-":
			continue
		case len(tok) == 1 && tok[0] >= 'a' && tok[0] <= 'z':
			out[i] = int(tok[0] - 'a')
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("answer %d: %q is not a letter or index", i+1, tok)
			}
			out[i] = n
		}
	}
	return out, nil
}
