package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/app"
	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/onboarding"
	"github.com/adamlaw669/Curio/internal/screen"
	"github.com/adamlaw669/Curio/internal/screens/onboardscreen"
	"github.com/adamlaw669/Curio/internal/screens/welcome"
)

func newOnboardCmd() *cobra.Command {
	onboardCmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set up a student's learning profile",
		Long: "Runs the onboarding wizard: level, goal, daily time, learning styles and a " +
			"short diagnostic. Passing --level skips the interactive screen.",
		Args: cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			var who []string
			if s, _ := cmd.Flags().GetString("student"); s != "" {
				who = []string{s}
			}
			u, err := e.studentArg(who)
			if err != nil {
				return err
			}

			var res onboarding.Result
			if level, _ := cmd.Flags().GetString("level"); level != "" {
				res, err = onboardFromFlags(cmd, u.ID, level)
				if err != nil {
					return err
				}
			} else {
				done := false
				intro := welcome.New(u.Name, func() screen.Screen {
					return onboardscreen.New(u.ID, func(r onboarding.Result) {
						res, done = r, true
					})
				})
				if err := app.Run(intro); err != nil {
					return err
				}
				if !done {
					fmt.Fprintln(e.out, "Onboarding cancelled; nothing saved.")
					return nil
				}
			}

			if err := e.cat.UpsertProfile(res.Profile); err != nil {
				return err
			}
			if cur := e.state.Snapshot().CurrentUser; cur != nil && cur.ID == u.ID {
				e.state.SetStudentProfile(&res.Profile)
				if err := e.state.Save(e.ctx); err != nil {
					return err
				}
			}

			p := res.Profile
			fmt.Fprintf(e.out, "Profile saved for %s.\n", u.Name)
			fmt.Fprintf(e.out, "  Level:       %s\n", p.Level)
			fmt.Fprintf(e.out, "  Goal:        %s\n", p.Goals)
			fmt.Fprintf(e.out, "  Daily time:  %s minutes\n", p.Preferences.TimePerDay)
			fmt.Fprintf(e.out, "  Styles:      %s\n", strings.Join(p.Preferences.Styles, ", "))
			fmt.Fprintf(e.out, "  Diagnostic:  %d%%\n", res.DiagnosticScore)
			for _, d := range res.Diagnostic {
				if !d.Correct {
					fmt.Fprintf(e.out, "  Review:      %s\n", d.Question.Concept)
				}
			}
			return nil
		}),
	}
	onboardCmd.Flags().StringP("student", "s", "", "Student id (defaults to the signed-in user)")
	onboardCmd.Flags().String("level", "", "beginner, intermediate or advanced")
	onboardCmd.Flags().String("goal", "", "Learning goal")
	onboardCmd.Flags().String("time", "", "Daily time budget: 15-30, 30-60 or 60+")
	onboardCmd.Flags().StringSlice("style", nil, "Preferred styles: video, text, interactive")
	onboardCmd.Flags().String("answers", "", `Diagnostic answers, e.g. "a,b,a,c,a"`)
	return onboardCmd
}

func onboardFromFlags(cmd *cobra.Command, userID, level string) (onboarding.Result, error) {
	w := onboarding.New()
	goal, _ := cmd.Flags().GetString("goal")
	budget, _ := cmd.Flags().GetString("time")
	styles, _ := cmd.Flags().GetStringSlice("style")
	raw, _ := cmd.Flags().GetString("answers")

	if err := w.SetLevel(catalog.Level(level)); err != nil {
		return onboarding.Result{}, err
	}
	w.SetGoal(goal)
	if err := w.SetTimePerDay(budget); err != nil {
		return onboarding.Result{}, err
	}
	for _, s := range styles {
		if err := w.ToggleStyle(s); err != nil {
			return onboarding.Result{}, err
		}
	}
	answers, err := parseAnswers(raw)
	if err != nil {
		return onboarding.Result{}, err
	}
	for i, q := range onboarding.Questions() {
		if opt, ok := answers[i]; ok {
			if err := w.Answer(q.ID, opt); err != nil {
				return onboarding.Result{}, err
			}
		}
	}
	return w.Complete(userID)
}
