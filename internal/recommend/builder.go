package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/adamlaw669/Curio/internal/analytics"
	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/logger"
)

// DefaultLimit caps how many recommendations one Build produces.
const DefaultLimit = 3

// weakThreshold is the mastery below which a concept needs review.
const weakThreshold = 60.0

// Builder derives module recommendations from a student's mastery.
type Builder struct {
	svc      *analytics.Service
	narrator *Narrator
	limit    int
	newID    func() string
	log      *logger.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLimit sets the maximum number of recommendations per Build.
// Non-positive values keep the default.
func WithLimit(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.limit = n
		}
	}
}

// WithNarrator lets an LLM write the reason text.
func WithNarrator(n *Narrator) Option {
	return func(b *Builder) { b.narrator = n }
}

// WithIDs overrides recommendation id generation.
func WithIDs(fn func() string) Option {
	return func(b *Builder) { b.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// New creates a Builder over the analytics service.
func New(svc *analytics.Service, opts ...Option) *Builder {
	b := &Builder{
		svc:   svc,
		limit: DefaultLimit,
		newID: func() string { return "rec-" + uuid.NewString() },
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// candidate is a concept worth recommending a module for.
type candidate struct {
	concept catalog.Concept
	mastery float64
}

// Build proposes recommendations for the student. Concepts with data
// and mastery below 60 are taken weakest first; each gets the first
// module teaching it that the student has not already been recommended.
// A student with no weak concepts gets the module following their
// strongest concept. Results are ordered by priority and are not added
// to the catalog.
func (b *Builder) Build(ctx context.Context, studentID string, now time.Time) ([]catalog.Recommendation, error) {
	cat := b.svc.Catalog()
	if _, ok := cat.FindStudent(studentID); !ok {
		return nil, fmt.Errorf("student %q: %w", studentID, analytics.ErrUnknownStudent)
	}

	taken := make(map[string]bool)
	for _, r := range cat.RecommendationsFor(studentID) {
		taken[r.ModuleID] = true
	}

	var weak, known []candidate
	for _, c := range cat.Concepts() {
		m, ok := b.svc.Mastery(studentID, c.ID)
		if !ok {
			continue
		}
		known = append(known, candidate{concept: c, mastery: m})
		if m < weakThreshold {
			weak = append(weak, candidate{concept: c, mastery: m})
		}
	}
	slices.SortStableFunc(weak, func(x, y candidate) int { return cmp.Compare(x.mastery, y.mastery) })

	var out []catalog.Recommendation
	add := func(mod catalog.Module, priority int, in Input) {
		taken[mod.ID] = true
		reason := in.fallback()
		if b.narrator != nil {
			reason = b.narrator.Reason(ctx, in, reason)
		}
		out = append(out, catalog.Recommendation{
			ID:        b.newID(),
			StudentID: studentID,
			ModuleID:  mod.ID,
			Reason:    reason,
			CreatedAt: now,
			Priority:  priority,
		})
	}

	for _, w := range weak {
		if len(out) >= b.limit {
			break
		}
		mod, ok := firstUntaken(cat.ModulesTeaching(w.concept.ID), taken)
		if !ok {
			b.log.Debug("no module left for weak concept", "student", studentID, "concept", w.concept.ID)
			continue
		}
		add(mod, priorityFor(w.mastery), Input{
			Kind:    KindReview,
			Concept: w.concept,
			Mastery: w.mastery,
			Module:  mod,
		})
	}

	if len(weak) == 0 && len(known) > 0 {
		strongest := slices.MaxFunc(known, func(x, y candidate) int { return cmp.Compare(x.mastery, y.mastery) })
		if mod, ok := nextModule(cat.Modules(), strongest.concept.ID, taken); ok {
			add(mod, 1, Input{
				Kind:    KindAdvance,
				Concept: strongest.concept,
				Mastery: strongest.mastery,
				Module:  mod,
			})
		}
	}

	slices.SortStableFunc(out, func(x, y catalog.Recommendation) int { return cmp.Compare(x.Priority, y.Priority) })
	return out, nil
}

// priorityFor maps a weak mastery to a priority: struggling concepts
// (below 40) come first, developing ones second.
func priorityFor(m float64) int {
	if analytics.Band(m) <= analytics.BandStruggling {
		return 1
	}
	return 2
}

func firstUntaken(mods []catalog.Module, taken map[string]bool) (catalog.Module, bool) {
	for _, m := range mods {
		if !taken[m.ID] {
			return m, true
		}
	}
	return catalog.Module{}, false
}

// nextModule returns the first untaken module after the first one that
// teaches conceptID, in catalog order, skipping modules that teach it too.
func nextModule(mods []catalog.Module, conceptID string, taken map[string]bool) (catalog.Module, bool) {
	start := slices.IndexFunc(mods, func(m catalog.Module) bool { return slices.Contains(m.Concepts, conceptID) })
	if start < 0 {
		return catalog.Module{}, false
	}
	for _, m := range mods[start+1:] {
		if taken[m.ID] || slices.Contains(m.Concepts, conceptID) {
			continue
		}
		return m, true
	}
	return catalog.Module{}, false
}
