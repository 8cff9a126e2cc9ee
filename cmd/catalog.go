package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the learning catalog",
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Report broken references in the catalog",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			issues := e.cat.Validate()
			if len(issues) == 0 {
				fmt.Fprintln(e.out, "Catalog is consistent.")
				return nil
			}
			for _, is := range issues {
				fmt.Fprintf(e.out, "%-14s %s\n", is.Kind, is)
			}
			strict, _ := cmd.Flags().GetBool("strict")
			if strict {
				return fmt.Errorf("%d catalog issues", len(issues))
			}
			return nil
		}),
	}
	validateCmd.Flags().Bool("strict", false, "Exit non-zero when issues are found")

	conceptsCmd := &cobra.Command{
		Use:   "concepts",
		Short: "List concepts by topic",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			for _, topic := range e.cat.Topics() {
				fmt.Fprintln(e.out, topic)
				for _, c := range e.cat.ConceptsByTopic(topic) {
					fmt.Fprintf(e.out, "  %-24s %s\n", c.ID, c.Name)
				}
			}
			return nil
		}),
	}

	modulesCmd := &cobra.Command{
		Use:   "modules",
		Short: "List modules",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			for _, m := range e.cat.Modules() {
				fmt.Fprintf(e.out, "%-20s %-28s %-12s %-12s %3d min\n",
					m.ID, m.Title, m.ContentType, m.Difficulty, m.EstTimeMins)
			}
			return nil
		}),
	}

	catalogCmd.AddCommand(validateCmd, conceptsCmd, modulesCmd)
	return catalogCmd
}
