package render

import (
	"fmt"
	"strings"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// CourseOutline renders a course's ordered modules with the concepts each
// teaches and the course totals.
func (r Renderer) CourseOutline(o catalog.CourseOutline) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", r.heading(o.Course.Title), r.dim(o.Course.ID))
	if o.Course.Description != "" {
		b.WriteString("  " + o.Course.Description + "\n")
	}
	b.WriteString("\n")

	instructor := o.Course.InstructorID
	if o.Instructor.Name != "" {
		instructor = o.Instructor.Name
	}
	r.field(&b, "Instructor", instructor)
	r.field(&b, "Modules", len(o.Modules))
	r.field(&b, "Concepts", o.ConceptCount)
	r.field(&b, "Total time", fmt.Sprintf("%d min", o.TotalMins))

	b.WriteString("\n" + r.heading("Modules") + "\n")
	if len(o.Modules) == 0 {
		b.WriteString("  No modules yet.\n")
	}
	for i, om := range o.Modules {
		m := om.Module
		fmt.Fprintf(&b, "  %d. %s  %s\n", i+1, m.Title,
			r.dim(fmt.Sprintf("%s · %s · %d min", m.ContentType, m.Difficulty, m.EstTimeMins)))
		names := make([]string, 0, len(om.Concepts)+len(om.UnknownConcepts))
		for _, c := range om.Concepts {
			names = append(names, c.Name)
		}
		for _, id := range om.UnknownConcepts {
			names = append(names, id+" (unknown)")
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, "     %s %s\n", r.dim("Concepts:"), strings.Join(names, ", "))
		}
	}

	if len(o.MissingModules) > 0 {
		fmt.Fprintf(&b, "\n  %s %s\n", r.dim("Unresolved modules:"), strings.Join(o.MissingModules, ", "))
	}
	return b.String()
}
