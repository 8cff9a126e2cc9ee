package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/catalog"
)

func newCohortCmd() *cobra.Command {
	cohortCmd := &cobra.Command{
		Use:   "cohort",
		Short: "Inspect cohorts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cohorts",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			for _, c := range e.cat.Cohorts() {
				members := e.cat.ListCohortMembers(c.ID)
				fmt.Fprintf(e.out, "%-18s %-20s %2d students\n", c.ID, c.Name, len(members.Members))
			}
			return nil
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show <cohort-id>",
		Short: "Show a cohort's headline numbers",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			sum, ok := e.svc.CohortSummary(args[0])
			if !ok {
				return fmt.Errorf("cohort %q not found", args[0])
			}
			fmt.Fprint(e.out, e.render.CohortSummary(sum))
			return nil
		}),
	}

	atRiskCmd := &cobra.Command{
		Use:   "atrisk <cohort-id>",
		Short: "List at-risk students in a cohort",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			fmt.Fprint(e.out, e.render.AtRisk(cohortName(e.cat, args[0]), e.svc.AtRiskStudents(args[0]), e.cat.FindStudent))
			return nil
		}),
	}

	heatmapCmd := &cobra.Command{
		Use:   "heatmap <cohort-id>",
		Short: "Show the cohort's concept mastery grid",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			if topic != catalog.AllTopics && len(e.cat.ConceptsByTopic(topic)) == 0 {
				return fmt.Errorf("unknown topic %q (have %v)", topic, e.cat.Topics())
			}
			fmt.Fprint(e.out, e.render.Heatmap(e.svc.Heatmap(args[0], topic), cohortName(e.cat, args[0])))
			return nil
		}),
	}
	heatmapCmd.Flags().StringP("topic", "t", catalog.AllTopics, `Topic to show, or "all"`)

	cohortCmd.AddCommand(listCmd, showCmd, atRiskCmd, heatmapCmd)
	return cohortCmd
}

func cohortName(cat *catalog.Catalog, id string) string {
	if c, ok := cat.FindCohort(id); ok {
		return c.Name
	}
	return id
}
