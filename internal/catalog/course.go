package catalog

import "slices"

// OutlineModule is one step of a course outline with its concepts resolved.
type OutlineModule struct {
	Module          Module
	Concepts        []Concept
	UnknownConcepts []string
}

// CourseOutline is a course with its ordered modules resolved. Module ids
// that do not resolve are listed in MissingModules and skipped.
type CourseOutline struct {
	Course         Course
	Instructor     User
	Modules        []OutlineModule
	MissingModules []string
	TotalMins      int
	ConceptCount   int
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	for i, course := range c.courses {
		course.Modules = slices.Clone(course.Modules)
		out[i] = course
	}
	return out
}

// CoursesFor returns the courses owned by instructorID, in catalog order.
func (c *Catalog) CoursesFor(instructorID string) []Course {
	var out []Course
	for _, course := range c.Courses() {
		if course.InstructorID == instructorID {
			out = append(out, course)
		}
	}
	return out
}

// OutlineCourse resolves a course's modules in course order along with
// the concepts each teaches. ConceptCount counts distinct resolved
// concepts across the course.
func (c *Catalog) OutlineCourse(id string) (CourseOutline, bool) {
	course, ok := c.FindCourse(id)
	if !ok {
		return CourseOutline{}, false
	}
	out := CourseOutline{Course: course}
	out.Instructor, _ = c.FindInstructor(course.InstructorID)

	seen := map[string]bool{}
	for _, mid := range course.Modules {
		m, ok := c.FindModule(mid)
		if !ok {
			out.MissingModules = append(out.MissingModules, mid)
			continue
		}
		om := OutlineModule{Module: m}
		for _, cid := range m.Concepts {
			concept, ok := c.FindConcept(cid)
			if !ok {
				om.UnknownConcepts = append(om.UnknownConcepts, cid)
				continue
			}
			om.Concepts = append(om.Concepts, concept)
			if !seen[cid] {
				seen[cid] = true
				out.ConceptCount++
			}
		}
		out.TotalMins += m.EstTimeMins
		out.Modules = append(out.Modules, om)
	}
	return out, true
}
