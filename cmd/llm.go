package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/llm"
	"github.com/adamlaw669/Curio/internal/store"
)

func newLLMCmd() *cobra.Command {
	llmCmd := &cobra.Command{
		Use:   "llm",
		Short: "Inspect recorded LLM requests",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent LLM requests",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			purpose, _ := cmd.Flags().GetString("purpose")

			events, err := e.events.LLMRequests(e.ctx, store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if purpose != "" {
				events = slices.DeleteFunc(events, func(ev store.LLMRequestEvent) bool { return ev.Purpose != purpose })
			}
			if limit > 0 && len(events) > limit {
				events = events[len(events)-limit:]
			}
			if len(events) == 0 {
				fmt.Fprintln(e.out, "No LLM requests found.")
				return nil
			}

			fmt.Fprintf(e.out, "%-5s  %-19s  %-18s  %-28s  %-6s  %-6s  %-7s  %s\n",
				"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
			fmt.Fprintln(e.out, strings.Repeat("─", 104))
			for _, ev := range events {
				ok := "✓"
				if !ev.Success {
					ok = "✗ " + ev.ErrorMessage
				}
				fmt.Fprintf(e.out, "%-5d  %-19s  %-18s  %-28s  %-6d  %-6d  %-7d  %s\n",
					ev.Seq,
					ev.RecordedAt.Local().Format("2006-01-02 15:04:05"),
					truncate(ev.Purpose, 18),
					truncate(ev.Model, 28),
					ev.InputTokens,
					ev.OutputTokens,
					ev.LatencyMs,
					ok,
				)
			}
			return nil
		}),
	}
	listCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	listCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. recommend-reason)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated LLM token usage and estimated cost",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			events, err := e.events.LLMRequests(e.ctx, store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Fprintln(e.out, "No LLM usage recorded yet.")
				return nil
			}

			byPurpose := aggregateUsage(events, func(ev store.LLMRequestEvent) string { return ev.Purpose })
			fmt.Fprintln(e.out, "Usage by Purpose")
			fmt.Fprintln(e.out, strings.Repeat("─", 72))
			fmt.Fprintf(e.out, "%-18s  %6s  %10s  %10s  %10s  %8s\n",
				"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
			fmt.Fprintln(e.out, strings.Repeat("─", 72))

			var total usage
			for _, u := range byPurpose {
				fmt.Fprintf(e.out, "%-18s  %6d  %10d  %10d  %10d  %8d\n",
					truncate(u.key, 18), u.calls, u.in, u.out, u.in+u.out, u.avgLatency())
				total.calls += u.calls
				total.in += u.in
				total.out += u.out
			}
			fmt.Fprintln(e.out, strings.Repeat("─", 72))
			fmt.Fprintf(e.out, "%-18s  %6d  %10d  %10d  %10d\n",
				"TOTAL", total.calls, total.in, total.out, total.in+total.out)

			byModel := aggregateUsage(events, func(ev store.LLMRequestEvent) string { return ev.Model })
			fmt.Fprintln(e.out)
			fmt.Fprintln(e.out, "Estimated Cost (USD)")
			fmt.Fprintln(e.out, strings.Repeat("─", 72))
			fmt.Fprintf(e.out, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
			fmt.Fprintln(e.out, strings.Repeat("─", 72))

			var totalCost float64
			var unknown []string
			for _, u := range byModel {
				cost := llm.LookupCost(u.key)
				if cost == nil {
					unknown = append(unknown, u.key)
					fmt.Fprintf(e.out, "%-32s  %6d  %10d  %10d  %10s\n", truncate(u.key, 32), u.calls, u.in, u.out, "?")
					continue
				}
				c := cost.Cost(u.in, u.out)
				totalCost += c
				fmt.Fprintf(e.out, "%-32s  %6d  %10d  %10d  %10s\n", truncate(u.key, 32), u.calls, u.in, u.out, formatCost(c))
			}

			fmt.Fprintln(e.out, strings.Repeat("─", 72))
			label := "TOTAL"
			if len(unknown) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Fprintf(e.out, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(totalCost))
			if len(unknown) > 0 {
				fmt.Fprintf(e.out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		}),
	}

	llmCmd.AddCommand(listCmd, statsCmd)
	return llmCmd
}

type usage struct {
	key          string
	calls        int
	in, out      int
	latencyTotal int64
}

func (u usage) avgLatency() int64 {
	if u.calls == 0 {
		return 0
	}
	return u.latencyTotal / int64(u.calls)
}

// aggregateUsage groups events by key, in first-seen order.
func aggregateUsage(events []store.LLMRequestEvent, key func(store.LLMRequestEvent) string) []usage {
	var out []usage
	idx := make(map[string]int)
	for _, ev := range events {
		k := key(ev)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, usage{key: k})
		}
		out[i].calls++
		out[i].in += ev.InputTokens
		out[i].out += ev.OutputTokens
		out[i].latencyTotal += ev.LatencyMs
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
