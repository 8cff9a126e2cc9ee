package catalog

import (
	"fmt"
	"strings"
)

// Issue is a single referential-integrity problem in a catalog.
type Issue struct {
	Kind string // "duplicate-id", "dangling-ref", "role-mismatch"
	Ref  string // record that holds the bad reference
	ID   string // the id that failed to resolve
	Msg  string
}

func (i Issue) String() string {
	return i.Msg
}

// Validate checks cross-collection references. Problems are reported,
// never repaired: lookups and aggregations already treat unresolved ids
// as "no data".
func (c *Catalog) Validate() []Issue {
	var issues []Issue
	add := func(kind, ref, id, format string, args ...any) {
		issues = append(issues, Issue{Kind: kind, Ref: ref, ID: id, Msg: fmt.Sprintf(format, args...)})
	}

	checkDuplicates := func(kind string, ids []string) {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				add("duplicate-id", kind, id, "duplicate %s id: %q", kind, id)
			}
			seen[id] = true
		}
	}
	checkDuplicates("user", collectIDs(c.users, func(u User) string { return u.ID }))
	checkDuplicates("concept", collectIDs(c.concepts, func(x Concept) string { return x.ID }))
	checkDuplicates("module", collectIDs(c.modules, func(m Module) string { return m.ID }))
	checkDuplicates("course", collectIDs(c.courses, func(x Course) string { return x.ID }))
	checkDuplicates("cohort", collectIDs(c.cohorts, func(x Cohort) string { return x.ID }))

	for _, m := range c.modules {
		for _, cid := range m.Concepts {
			if _, ok := c.conceptIdx[cid]; !ok {
				add("dangling-ref", m.ID, cid, "module %q references unknown concept %q", m.ID, cid)
			}
		}
	}

	for _, course := range c.courses {
		for _, mid := range course.Modules {
			if _, ok := c.moduleIdx[mid]; !ok {
				add("dangling-ref", course.ID, mid, "course %q references unknown module %q", course.ID, mid)
			}
		}
		if _, ok := c.FindInstructor(course.InstructorID); !ok {
			add("role-mismatch", course.ID, course.InstructorID, "course %q owner %q is not an instructor", course.ID, course.InstructorID)
		}
	}

	for _, cohort := range c.cohorts {
		for _, sid := range cohort.StudentIDs {
			if _, ok := c.FindStudent(sid); !ok {
				add("dangling-ref", cohort.ID, sid, "cohort %q member %q is not a known student", cohort.ID, sid)
			}
		}
		if _, ok := c.FindInstructor(cohort.InstructorID); !ok {
			add("role-mismatch", cohort.ID, cohort.InstructorID, "cohort %q owner %q is not an instructor", cohort.ID, cohort.InstructorID)
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for userID := range c.profiles {
		if _, ok := c.FindStudent(userID); !ok {
			add("dangling-ref", "profile", userID, "profile for %q does not belong to a known student", userID)
		}
	}

	for _, a := range c.assessments {
		if _, ok := c.FindStudent(a.StudentID); !ok {
			add("dangling-ref", a.ID, a.StudentID, "assessment %q references unknown student %q", a.ID, a.StudentID)
		}
		if _, ok := c.conceptIdx[a.ConceptID]; !ok {
			add("dangling-ref", a.ID, a.ConceptID, "assessment %q references unknown concept %q", a.ID, a.ConceptID)
		}
		if a.ModuleID != "" {
			if _, ok := c.moduleIdx[a.ModuleID]; !ok {
				add("dangling-ref", a.ID, a.ModuleID, "assessment %q references unknown module %q", a.ID, a.ModuleID)
			}
		}
	}

	for i, e := range c.engagement {
		ref := fmt.Sprintf("engagement[%d]", i)
		if _, ok := c.FindStudent(e.StudentID); !ok {
			add("dangling-ref", ref, e.StudentID, "%s references unknown student %q", ref, e.StudentID)
		}
		if e.ModuleID != "" {
			if _, ok := c.moduleIdx[e.ModuleID]; !ok {
				add("dangling-ref", ref, e.ModuleID, "%s references unknown module %q", ref, e.ModuleID)
			}
		}
	}

	for _, r := range c.recommendations {
		if _, ok := c.moduleIdx[r.ModuleID]; !ok {
			add("dangling-ref", r.ID, r.ModuleID, "recommendation %q references unknown module %q", r.ID, r.ModuleID)
		}
	}

	return issues
}

// ValidateErr folds Validate's issues into a single error, or nil.
func (c *Catalog) ValidateErr() error {
	issues := c.Validate()
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, len(issues))
	for i, is := range issues {
		msgs[i] = is.Msg
	}
	return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

func collectIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}
