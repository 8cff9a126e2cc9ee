package catalog

import "slices"

// AllTopics selects every concept in ConceptsByTopic.
const AllTopics = "all"

// MemberList is the result of resolving a cohort's student ids. Ids that
// do not resolve to a student are reported in Missing rather than dropped
// silently.
type MemberList struct {
	Members []User
	Missing []string
}

// FindUser returns the user with the given id. When role is supplied only
// a user with that role matches.
func (c *Catalog) FindUser(id string, role ...Role) (User, bool) {
	i, ok := c.userIdx[id]
	if !ok {
		return User{}, false
	}
	u := c.users[i]
	if len(role) > 0 && u.Role != role[0] {
		return User{}, false
	}
	return u, true
}

func (c *Catalog) FindStudent(id string) (User, bool) {
	return c.FindUser(id, RoleStudent)
}

func (c *Catalog) FindInstructor(id string) (User, bool) {
	return c.FindUser(id, RoleInstructor)
}

func (c *Catalog) FindConcept(id string) (Concept, bool) {
	i, ok := c.conceptIdx[id]
	if !ok {
		return Concept{}, false
	}
	return c.concepts[i], true
}

func (c *Catalog) FindModule(id string) (Module, bool) {
	i, ok := c.moduleIdx[id]
	if !ok {
		return Module{}, false
	}
	m := c.modules[i]
	m.Concepts = slices.Clone(m.Concepts)
	return m, true
}

func (c *Catalog) FindCourse(id string) (Course, bool) {
	i, ok := c.courseIdx[id]
	if !ok {
		return Course{}, false
	}
	course := c.courses[i]
	course.Modules = slices.Clone(course.Modules)
	return course, true
}

func (c *Catalog) FindCohort(id string) (Cohort, bool) {
	i, ok := c.cohortIdx[id]
	if !ok {
		return Cohort{}, false
	}
	cohort := c.cohorts[i]
	cohort.StudentIDs = slices.Clone(cohort.StudentIDs)
	return cohort, true
}

func (c *Catalog) FindProfile(userID string) (StudentProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.profiles[userID]
	if !ok {
		return StudentProfile{}, false
	}
	return cloneProfile(p), true
}

// ListCohortMembers resolves a cohort's student ids in membership order.
// An unknown cohort yields an empty list.
func (c *Catalog) ListCohortMembers(cohortID string) MemberList {
	var ml MemberList
	cohort, ok := c.FindCohort(cohortID)
	if !ok {
		return ml
	}
	for _, id := range cohort.StudentIDs {
		if u, ok := c.FindStudent(id); ok {
			ml.Members = append(ml.Members, u)
		} else {
			ml.Missing = append(ml.Missing, id)
		}
	}
	return ml
}

// Users returns all users in catalog order.
func (c *Catalog) Users() []User {
	return slices.Clone(c.users)
}

// Cohorts returns all cohorts in catalog order.
func (c *Catalog) Cohorts() []Cohort {
	out := make([]Cohort, len(c.cohorts))
	for i, cohort := range c.cohorts {
		cohort.StudentIDs = slices.Clone(cohort.StudentIDs)
		out[i] = cohort
	}
	return out
}

// Concepts returns the full concept catalog in catalog order.
func (c *Catalog) Concepts() []Concept {
	return slices.Clone(c.concepts)
}

// Topics returns the distinct concept topics in first-seen order.
func (c *Catalog) Topics() []string {
	return slices.Clone(c.topics)
}

// ConceptsByTopic filters the concept catalog by topic. AllTopics or an
// empty topic returns every concept.
func (c *Catalog) ConceptsByTopic(topic string) []Concept {
	if topic == "" || topic == AllTopics {
		return c.Concepts()
	}
	var out []Concept
	for _, concept := range c.concepts {
		if concept.Topic == topic {
			out = append(out, concept)
		}
	}
	return out
}

// Modules returns all modules in catalog order.
func (c *Catalog) Modules() []Module {
	out := make([]Module, len(c.modules))
	for i, m := range c.modules {
		m.Concepts = slices.Clone(m.Concepts)
		out[i] = m
	}
	return out
}

// ModulesTeaching returns the modules whose concept list includes conceptID.
func (c *Catalog) ModulesTeaching(conceptID string) []Module {
	var out []Module
	for _, m := range c.modules {
		if slices.Contains(m.Concepts, conceptID) {
			m.Concepts = slices.Clone(m.Concepts)
			out = append(out, m)
		}
	}
	return out
}

// AssessmentsFor returns the student's assessments in log order.
func (c *Catalog) AssessmentsFor(studentID string) []Assessment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Assessment
	for _, a := range c.assessments {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out
}

// EngagementFor returns the student's engagement records in log order.
func (c *Catalog) EngagementFor(studentID string) []Engagement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Engagement
	for _, e := range c.engagement {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

// RecommendationsFor returns the student's recommendations, most important
// (lowest priority value) first; ties keep insertion order.
func (c *Catalog) RecommendationsFor(studentID string) []Recommendation {
	c.mu.RLock()
	var out []Recommendation
	for _, r := range c.recommendations {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	c.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Recommendation) int {
		return a.Priority - b.Priority
	})
	return out
}
