package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is returned when an appended record fails validation.
var ErrInvalidRecord = errors.New("invalid record")

var validate = validator.New()

// Catalog holds the reference collections and the append-only
// assessment and engagement logs. Reference collections are indexed once
// at construction. The logs and profiles are guarded by mu; everything
// else is read-only after New.
type Catalog struct {
	users    []User
	concepts []Concept
	modules  []Module
	courses  []Course
	cohorts  []Cohort

	userIdx    map[string]int
	conceptIdx map[string]int
	moduleIdx  map[string]int
	courseIdx  map[string]int
	cohortIdx  map[string]int
	topics     []string

	mu              sync.RWMutex
	profiles        map[string]StudentProfile
	assessments     []Assessment
	engagement      []Engagement
	recommendations []Recommendation
}

// New builds a Catalog from d. The first record wins when ids repeat.
func New(d Data) *Catalog {
	c := &Catalog{
		users:    slices.Clone(d.Users),
		concepts: slices.Clone(d.Concepts),
		modules:  slices.Clone(d.Modules),
		courses:  slices.Clone(d.Courses),
		cohorts:  slices.Clone(d.Cohorts),

		userIdx:    make(map[string]int, len(d.Users)),
		conceptIdx: make(map[string]int, len(d.Concepts)),
		moduleIdx:  make(map[string]int, len(d.Modules)),
		courseIdx:  make(map[string]int, len(d.Courses)),
		cohortIdx:  make(map[string]int, len(d.Cohorts)),

		profiles:        make(map[string]StudentProfile, len(d.Profiles)),
		assessments:     slices.Clone(d.Assessments),
		engagement:      slices.Clone(d.Engagement),
		recommendations: slices.Clone(d.Recommendations),
	}

	indexByID(c.userIdx, c.users, func(u User) string { return u.ID })
	indexByID(c.conceptIdx, c.concepts, func(x Concept) string { return x.ID })
	indexByID(c.moduleIdx, c.modules, func(m Module) string { return m.ID })
	indexByID(c.courseIdx, c.courses, func(x Course) string { return x.ID })
	indexByID(c.cohortIdx, c.cohorts, func(x Cohort) string { return x.ID })

	seen := make(map[string]bool)
	for _, concept := range c.concepts {
		if !seen[concept.Topic] {
			seen[concept.Topic] = true
			c.topics = append(c.topics, concept.Topic)
		}
	}

	for _, p := range d.Profiles {
		if _, exists := c.profiles[p.UserID]; !exists {
			c.profiles[p.UserID] = cloneProfile(p)
		}
	}

	return c
}

func indexByID[T any](idx map[string]int, items []T, id func(T) string) {
	for i, item := range items {
		if _, exists := idx[id(item)]; !exists {
			idx[id(item)] = i
		}
	}
}

// CheckAssessment reports whether AppendAssessment would accept a.
func CheckAssessment(a Assessment) error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("assessment %q: %w: %v", a.ID, ErrInvalidRecord, err)
	}
	return nil
}

// CheckEngagement reports whether AppendEngagement would accept e.
func CheckEngagement(e Engagement) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("engagement for %q: %w: %v", e.StudentID, ErrInvalidRecord, err)
	}
	return nil
}

// AppendAssessment validates a and appends it to the log.
func (c *Catalog) AppendAssessment(a Assessment) error {
	if err := CheckAssessment(a); err != nil {
		return err
	}
	c.mu.Lock()
	c.assessments = append(c.assessments, a)
	c.mu.Unlock()
	return nil
}

// AppendEngagement validates e and appends it to the log.
func (c *Catalog) AppendEngagement(e Engagement) error {
	if err := CheckEngagement(e); err != nil {
		return err
	}
	c.mu.Lock()
	c.engagement = append(c.engagement, e)
	c.mu.Unlock()
	return nil
}

// AddRecommendations validates and appends recs. Either all are added or
// none are.
func (c *Catalog) AddRecommendations(recs ...Recommendation) error {
	for _, r := range recs {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("recommendation %q: %w: %v", r.ID, ErrInvalidRecord, err)
		}
	}
	c.mu.Lock()
	c.recommendations = append(c.recommendations, recs...)
	c.mu.Unlock()
	return nil
}

// UpsertProfile stores p, replacing any existing profile for the same user.
func (c *Catalog) UpsertProfile(p StudentProfile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile %q: %w: %v", p.UserID, ErrInvalidRecord, err)
	}
	c.mu.Lock()
	c.profiles[p.UserID] = cloneProfile(p)
	c.mu.Unlock()
	return nil
}

// Replay appends previously recorded facts. Invalid records are skipped
// and returned so the caller can report them.
func (c *Catalog) Replay(assessments []Assessment, engagement []Engagement) []error {
	var skipped []error
	for _, a := range assessments {
		if err := c.AppendAssessment(a); err != nil {
			skipped = append(skipped, err)
		}
	}
	for _, e := range engagement {
		if err := c.AppendEngagement(e); err != nil {
			skipped = append(skipped, err)
		}
	}
	return skipped
}

// AssessmentCount returns the current length of the assessment log.
func (c *Catalog) AssessmentCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.assessments)
}

// AssessmentsSince returns a copy of the log entries at positions >= n.
// Because the log only grows, callers can use it to catch up incrementally.
func (c *Catalog) AssessmentsSince(n int) []Assessment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n >= len(c.assessments) {
		return nil
	}
	return slices.Clone(c.assessments[n:])
}

func cloneProfile(p StudentProfile) StudentProfile {
	p.Preferences.Styles = slices.Clone(p.Preferences.Styles)
	return p
}
