package appstate

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/logger"
)

// PerformanceState is a coarse demo toggle for how well the current
// student is doing.
type PerformanceState string

const (
	PerformanceStrong PerformanceState = "strong"
	PerformanceMixed  PerformanceState = "mixed"
	PerformanceWeak   PerformanceState = "weak"
)

// ErrInvalidPerformanceState is returned for values outside strong|mixed|weak.
var ErrInvalidPerformanceState = errors.New("invalid performance state")

// ErrLogsNotEmpty is returned by Hydrate once the session logs hold records.
var ErrLogsNotEmpty = errors.New("session logs already populated")

// ParsePerformanceState validates s.
func ParsePerformanceState(s string) (PerformanceState, error) {
	switch p := PerformanceState(s); p {
	case PerformanceStrong, PerformanceMixed, PerformanceWeak:
		return p, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidPerformanceState)
}

// State is a consistent copy of everything a Holder tracks.
type State struct {
	CurrentUser           *catalog.User
	CurrentStudentProfile *catalog.StudentProfile
	Assessments           []catalog.Assessment
	Recommendations       []catalog.Recommendation
	Engagement            []catalog.Engagement
	PerformanceState      PerformanceState
}

// Holder is the session-scoped state container. All methods are safe for
// concurrent use; mutations replace the state wholesale under the lock.
type Holder struct {
	mu    sync.RWMutex
	state State

	now  func() time.Time
	repo Repo
	log  *logger.Logger
}

// Option configures a Holder.
type Option func(*Holder)

// WithClock overrides the clock used for date-relative reads.
func WithClock(now func() time.Time) Option {
	return func(h *Holder) { h.now = now }
}

// WithRepo sets the persistence backend used by Save.
func WithRepo(r Repo) Option {
	return func(h *Holder) { h.repo = r }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(h *Holder) { h.log = l }
}

// New creates an empty Holder with PerformanceMixed.
func New(opts ...Option) *Holder {
	h := &Holder{
		state: State{PerformanceState: PerformanceMixed},
		now:   time.Now,
		log:   logger.Nop(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Holder) update(fn func(s *State)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	next := cloneState(h.state)
	fn(&next)
	h.state = next
}

// SetCurrentUser sets or clears (nil) the logged-in user.
func (h *Holder) SetCurrentUser(u *catalog.User) {
	h.update(func(s *State) {
		if u == nil {
			s.CurrentUser = nil
			return
		}
		cp := *u
		s.CurrentUser = &cp
	})
}

// SetStudentProfile sets or clears (nil) the current student's profile.
func (h *Holder) SetStudentProfile(p *catalog.StudentProfile) {
	h.update(func(s *State) {
		if p == nil {
			s.CurrentStudentProfile = nil
			return
		}
		cp := *p
		cp.Preferences.Styles = slices.Clone(p.Preferences.Styles)
		s.CurrentStudentProfile = &cp
	})
}

func (h *Holder) AppendAssessment(a catalog.Assessment) {
	h.update(func(s *State) { s.Assessments = append(s.Assessments, a) })
}

func (h *Holder) AppendEngagement(e catalog.Engagement) {
	h.update(func(s *State) { s.Engagement = append(s.Engagement, e) })
}

// ReplaceRecommendations swaps in a new recommendation list.
func (h *Holder) ReplaceRecommendations(recs []catalog.Recommendation) {
	h.update(func(s *State) { s.Recommendations = slices.Clone(recs) })
}

// SetPerformanceState validates and stores p.
func (h *Holder) SetPerformanceState(p PerformanceState) error {
	if _, err := ParsePerformanceState(string(p)); err != nil {
		return err
	}
	h.update(func(s *State) { s.PerformanceState = p })
	return nil
}

// Snapshot returns a copy of the current state.
func (h *Holder) Snapshot() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneState(h.state)
}

// AverageScore is the rounded mean of the session's assessments, or 0
// when there are none.
func (h *Holder) AverageScore() float64 {
	avg, _ := h.AverageScoreOK()
	return avg
}

// AverageScoreOK is like AverageScore but reports false when there are
// no assessments.
func (h *Holder) AverageScoreOK() (float64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.state.Assessments) == 0 {
		return 0, false
	}
	var total float64
	for _, a := range h.state.Assessments {
		total += a.Score
	}
	return math.Round(total / float64(len(h.state.Assessments))), true
}

func (h *Holder) TotalEngagementMinutes() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, e := range h.state.Engagement {
		n += e.Minutes
	}
	return n
}

// WeeklyEngagementSeries returns minutes per day for the seven calendar
// days ending today, oldest first. Days are compared as UTC dates.
func (h *Holder) WeeklyEngagementSeries() [7]int {
	today := h.now().UTC()
	var days [7]string
	for i := range days {
		days[i] = today.AddDate(0, 0, i-6).Format(catalog.DateLayout)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	var series [7]int
	for _, e := range h.state.Engagement {
		if i := slices.Index(days[:], e.Date); i >= 0 {
			series[i] += e.Minutes
		}
	}
	return series
}

func cloneState(s State) State {
	out := s
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	if s.CurrentStudentProfile != nil {
		p := *s.CurrentStudentProfile
		p.Preferences.Styles = slices.Clone(p.Preferences.Styles)
		out.CurrentStudentProfile = &p
	}
	out.Assessments = slices.Clone(s.Assessments)
	out.Recommendations = slices.Clone(s.Recommendations)
	out.Engagement = slices.Clone(s.Engagement)
	return out
}

// Source supplies a student's recorded history.
type Source interface {
	AssessmentsFor(studentID string) []catalog.Assessment
	EngagementFor(studentID string) []catalog.Engagement
	RecommendationsFor(studentID string) []catalog.Recommendation
}

// Hydrate seeds the empty session logs of a freshly loaded holder with the
// current user's recorded history from src. It never removes records:
// once any log holds a record it returns ErrLogsNotEmpty and changes
// nothing. With no user signed in it is a no-op.
func (h *Holder) Hydrate(src Source) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.state
	if len(s.Assessments) > 0 || len(s.Engagement) > 0 || len(s.Recommendations) > 0 {
		return ErrLogsNotEmpty
	}
	if s.CurrentUser == nil {
		return nil
	}
	id := s.CurrentUser.ID
	next := cloneState(s)
	next.Assessments = src.AssessmentsFor(id)
	next.Engagement = src.EngagementFor(id)
	next.Recommendations = src.RecommendationsFor(id)
	h.state = next
	return nil
}
