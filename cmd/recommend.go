package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/recommend"
)

func newRecommendCmd() *cobra.Command {
	recommendCmd := &cobra.Command{
		Use:   "recommend [student-id]",
		Short: "Suggest modules for a student from their weakest concepts",
		Args:  cobra.MaximumNArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			u, err := e.studentArg(args)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				limit = e.cfg.RecommendLimit
			}
			opts := []recommend.Option{recommend.WithLimit(limit), recommend.WithLogger(e.log)}
			if noLLM, _ := cmd.Flags().GetBool("no-llm"); !noLLM {
				if p := e.provider(); p != nil {
					opts = append(opts, recommend.WithNarrator(
						recommend.NewNarrator(p, recommend.DefaultNarratorConfig(), e.log)))
				}
			}

			recs, err := recommend.New(e.svc, opts...).Build(e.ctx, u.ID, e.now())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintf(e.out, "No new recommendations for %s.\n", u.Name)
				return nil
			}
			if err := e.cat.AddRecommendations(recs...); err != nil {
				return err
			}
			if cur := e.state.Snapshot().CurrentUser; cur != nil && cur.ID == u.ID {
				e.state.ReplaceRecommendations(e.cat.RecommendationsFor(u.ID))
			}

			fmt.Fprintf(e.out, "Recommended for %s\n", u.Name)
			fmt.Fprint(e.out, e.render.Recommendations(recs, e.cat.FindModule))
			return nil
		}),
	}
	recommendCmd.Flags().IntP("limit", "n", 0, "Maximum recommendations (defaults to recommend.limit)")
	recommendCmd.Flags().Bool("no-llm", false, "Use template reasons even when an LLM is configured")
	return recommendCmd
}
