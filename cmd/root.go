package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/store"
)

// Execute runs the curio command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "curio",
		Short: "Adaptive learning analytics",
		Long: "Curio tracks student assessments and engagement, derives concept mastery " +
			"and at-risk signals, and recommends what each student should study next.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CURIO_DB)")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	root.AddCommand(
		newCohortCmd(),
		newCourseCmd(),
		newStudentCmd(),
		newSessionCmd(),
		newRecordCmd(),
		newRecommendCmd(),
		newQuizCmd(),
		newOnboardCmd(),
		newCatalogCmd(),
		newLLMCmd(),
		newVersionCmd(),
	)
	return root
}

// resolveDBPath returns the database path using --db (highest priority),
// then the configured path, then the default XDG location.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
