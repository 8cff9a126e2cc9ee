package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/analytics"
	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/ui/render"
)

func newStudentCmd() *cobra.Command {
	studentCmd := &cobra.Command{
		Use:   "student",
		Short: "Inspect students",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			for _, u := range e.cat.Users() {
				if u.Role != catalog.RoleStudent {
					continue
				}
				risk := ""
				if e.svc.IsAtRisk(u.ID) {
					risk = "at risk"
				}
				fmt.Fprintf(e.out, "%-8s %-22s %s\n", u.ID, u.Name, risk)
			}
			return nil
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show [student-id]",
		Short: "Show a student's report and recommendations",
		Args:  cobra.MaximumNArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			u, err := e.studentArg(args)
			if err != nil {
				return err
			}
			rep, err := e.svc.StudentReport(u.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(e.out, e.render.StudentReport(rep))
			fmt.Fprintln(e.out)
			fmt.Fprintln(e.out, "Recommendations")
			fmt.Fprint(e.out, e.render.Recommendations(e.cat.RecommendationsFor(u.ID), e.cat.FindModule))
			return nil
		}),
	}

	masteryCmd := &cobra.Command{
		Use:   "mastery [student-id]",
		Short: "Show mastery per concept",
		Args:  cobra.MaximumNArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			u, err := e.studentArg(args)
			if err != nil {
				return err
			}
			topic, _ := cmd.Flags().GetString("topic")
			concepts := e.cat.ConceptsByTopic(topic)
			if len(concepts) == 0 {
				return fmt.Errorf("unknown topic %q (have %v)", topic, e.cat.Topics())
			}

			fmt.Fprintf(e.out, "%s (%s)\n\n", u.Name, u.ID)
			for _, c := range concepts {
				score, ok := e.svc.Mastery(u.ID, c.ID)
				fmt.Fprintf(e.out, "  %-24s %-12s %5s  %s\n",
					c.Name, c.Topic, render.Mastery(score, ok), analytics.BandFor(score, ok).Label())
			}
			return nil
		}),
	}
	masteryCmd.Flags().StringP("topic", "t", catalog.AllTopics, `Topic to show, or "all"`)

	studentCmd.AddCommand(listCmd, showCmd, masteryCmd)
	return studentCmd
}
