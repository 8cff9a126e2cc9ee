package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamlaw669/Curio/internal/catalog"
)

func newCourseCmd() *cobra.Command {
	courseCmd := &cobra.Command{
		Use:   "course",
		Short: "Inspect instructor courses",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Long: "Lists every course, or only those owned by --instructor. When an " +
			"instructor is signed in the list defaults to their courses.",
		Args: cobra.NoArgs,
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			owner, _ := cmd.Flags().GetString("instructor")
			if owner == "" {
				if u := e.state.Snapshot().CurrentUser; u != nil && u.Role == catalog.RoleInstructor {
					owner = u.ID
				}
			}

			courses := e.cat.Courses()
			if owner != "" {
				if _, ok := e.cat.FindInstructor(owner); !ok {
					return fmt.Errorf("instructor %q not found", owner)
				}
				courses = e.cat.CoursesFor(owner)
			}
			if len(courses) == 0 {
				fmt.Fprintln(e.out, "No courses.")
				return nil
			}
			for _, c := range courses {
				o, _ := e.cat.OutlineCourse(c.ID)
				fmt.Fprintf(e.out, "%-20s %-28s %2d modules %3d min\n", c.ID, c.Title, len(o.Modules), o.TotalMins)
			}
			return nil
		}),
	}
	listCmd.Flags().StringP("instructor", "i", "", "Only courses owned by this instructor")

	showCmd := &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course's ordered modules and concepts",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(e *env, cmd *cobra.Command, args []string) error {
			o, ok := e.cat.OutlineCourse(args[0])
			if !ok {
				return fmt.Errorf("course %q not found", args[0])
			}
			fmt.Fprint(e.out, e.render.CourseOutline(o))
			return nil
		}),
	}

	courseCmd.AddCommand(listCmd, showCmd)
	return courseCmd
}
