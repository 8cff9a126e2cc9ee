package analytics

import (
	"errors"
	"sync"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// ErrUnknownStudent is returned by StudentReport when the id does not
// resolve to a student.
var ErrUnknownStudent = errors.New("unknown student")

type pairKey struct {
	student string
	concept string
}

type scoreSum struct {
	total float64
	count int
}

func (s scoreSum) mean() (float64, bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.total / float64(s.count), true
}

// Service answers mastery and risk questions over a catalog's assessment
// log. Assessments are grouped by (student, concept) and by student; the
// groups catch up with the log before every read, so appends made through
// the catalog are always reflected.
type Service struct {
	cat *catalog.Catalog

	mu        sync.Mutex
	seen      int
	byPair    map[pairKey]scoreSum
	byStudent map[string][]catalog.Assessment
}

// New creates a Service over cat and indexes its current log.
func New(cat *catalog.Catalog) *Service {
	s := &Service{
		cat:       cat,
		byPair:    make(map[pairKey]scoreSum),
		byStudent: make(map[string][]catalog.Assessment),
	}
	s.mu.Lock()
	s.catchUpLocked()
	s.mu.Unlock()
	return s
}

// Catalog returns the catalog the service reads from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

func (s *Service) catchUpLocked() {
	for _, a := range s.cat.AssessmentsSince(s.seen) {
		k := pairKey{a.StudentID, a.ConceptID}
		sum := s.byPair[k]
		sum.total += a.Score
		sum.count++
		s.byPair[k] = sum
		s.byStudent[a.StudentID] = append(s.byStudent[a.StudentID], a)
		s.seen++
	}
}

func (s *Service) pair(studentID, conceptID string) scoreSum {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catchUpLocked()
	return s.byPair[pairKey{studentID, conceptID}]
}

// studentLog returns the student's assessments in log order. The returned
// slice is owned by the caller.
func (s *Service) studentLog(studentID string) []catalog.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catchUpLocked()
	src := s.byStudent[studentID]
	out := make([]catalog.Assessment, len(src))
	copy(out, src)
	return out
}

// ConceptMastery returns the mean score of the student's assessments on
// the concept, or 0 when there are none. Use Mastery to tell "no data"
// apart from a genuine zero.
func (s *Service) ConceptMastery(studentID, conceptID string) float64 {
	m, _ := s.pair(studentID, conceptID).mean()
	return m
}

// Mastery is like ConceptMastery but reports false when the student has
// no assessments on the concept.
func (s *Service) Mastery(studentID, conceptID string) (float64, bool) {
	return s.pair(studentID, conceptID).mean()
}
