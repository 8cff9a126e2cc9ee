package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/catalog"
)

func newRecordCmd() *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record assessments and engagement",
	}
	recordCmd.PersistentFlags().StringP("student", "s", "", "Student id (defaults to the signed-in user)")
	recordCmd.PersistentFlags().StringP("module", "m", "", "Module the record belongs to")
	recordCmd.PersistentFlags().String("date", "", "Calendar date, YYYY-MM-DD (defaults to today, UTC)")

	assessmentCmd := &cobra.Command{
		Use:   "assessment",
		Short: "Record a scored attempt at a concept",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			studentID, moduleID, date, err := recordTarget(e, cmd)
			if err != nil {
				return err
			}
			conceptID, _ := cmd.Flags().GetString("concept")
			score, _ := cmd.Flags().GetFloat64("score")
			if _, ok := e.cat.FindConcept(conceptID); !ok {
				e.log.Warn("recording assessment for a concept outside the catalog", "concept", conceptID)
			}

			a := catalog.Assessment{
				ID:        "assess-" + e.newID(),
				StudentID: studentID,
				ConceptID: conceptID,
				Score:     score,
				Date:      date,
				ModuleID:  moduleID,
			}
			if err := e.recordAssessment(a); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Recorded %s: %s scored %.0f on %s.\n", a.ID, studentID, score, conceptID)
			fmt.Fprintf(e.out, "Mastery of %s is now %s.\n", conceptID, scoreText(e.svc.Mastery(studentID, conceptID)))
			return nil
		}),
	}
	assessmentCmd.Flags().StringP("concept", "c", "", "Concept id")
	assessmentCmd.Flags().Float64("score", 0, "Score, 0 to 100")
	_ = assessmentCmd.MarkFlagRequired("concept")
	_ = assessmentCmd.MarkFlagRequired("score")

	engagementCmd := &cobra.Command{
		Use:   "engagement",
		Short: "Record time spent studying",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			studentID, moduleID, date, err := recordTarget(e, cmd)
			if err != nil {
				return err
			}
			minutes, _ := cmd.Flags().GetInt("minutes")

			g := catalog.Engagement{StudentID: studentID, Date: date, Minutes: minutes, ModuleID: moduleID}
			if err := e.recordEngagement(g); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Recorded %d minutes for %s on %s.\n", minutes, studentID, date)
			return nil
		}),
	}
	engagementCmd.Flags().Int("minutes", 0, "Minutes spent")
	_ = engagementCmd.MarkFlagRequired("minutes")

	recordCmd.AddCommand(assessmentCmd, engagementCmd)
	return recordCmd
}

func recordTarget(e *env, cmd *cobra.Command) (studentID, moduleID, date string, err error) {
	var args []string
	if s, _ := cmd.Flags().GetString("student"); s != "" {
		args = []string{s}
	}
	u, err := e.studentArg(args)
	if err != nil {
		return "", "", "", err
	}

	moduleID, _ = cmd.Flags().GetString("module")
	if moduleID != "" {
		if _, ok := e.cat.FindModule(moduleID); !ok {
			return "", "", "", fmt.Errorf("module %q not found", moduleID)
		}
	}

	date, _ = cmd.Flags().GetString("date")
	if date == "" {
		date = e.today()
	}
	return u.ID, moduleID, date, nil
}

func scoreText(v float64, hasData bool) string {
	if !hasData {
		return "not started"
	}
	return fmt.Sprintf("%.0f", v)
}
