package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/appstate"
)

func newSessionCmd() *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the signed-in session",
	}

	loginCmd := &cobra.Command{
		Use:   "login <user-id>",
		Short: "Sign in as a student or instructor",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			u, ok := e.cat.FindUser(args[0])
			if !ok {
				return fmt.Errorf("user %q not found", args[0])
			}
			e.state.SetCurrentUser(&u)
			if p, ok := e.cat.FindProfile(u.ID); ok {
				e.state.SetStudentProfile(&p)
			} else {
				e.state.SetStudentProfile(nil)
			}
			if err := e.state.Save(e.ctx); err != nil {
				return err
			}
			e.log.Debug("signed in", "user", u.ID, "role", u.Role)
			fmt.Fprintf(e.out, "Signed in as %s (%s).\n", u.Name, u.Role)
			return nil
		}),
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			e.state.SetCurrentUser(nil)
			e.state.SetStudentProfile(nil)
			if err := e.state.Save(e.ctx); err != nil {
				return err
			}
			fmt.Fprintln(e.out, "Signed out.")
			return nil
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the session and its recommendations",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			fmt.Fprint(e.out, e.render.Session(e.state))
			if recs := e.state.Snapshot().Recommendations; len(recs) > 0 {
				fmt.Fprintln(e.out)
				fmt.Fprintln(e.out, "Recommendations")
				fmt.Fprint(e.out, e.render.Recommendations(recs, e.cat.FindModule))
			}
			return nil
		}),
	}

	stateCmd := &cobra.Command{
		Use:       "state <strong|mixed|weak>",
		Short:     "Set the session performance state",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(appstate.PerformanceStrong), string(appstate.PerformanceMixed), string(appstate.PerformanceWeak)},
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			p, err := appstate.ParsePerformanceState(args[0])
			if err != nil {
				return err
			}
			if err := e.state.SetPerformanceState(p); err != nil {
				return err
			}
			if err := e.state.Save(e.ctx); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Performance state set to %s.\n", p)
			return nil
		}),
	}

	sessionCmd.AddCommand(loginCmd, logoutCmd, showCmd, stateCmd)
	return sessionCmd
}
