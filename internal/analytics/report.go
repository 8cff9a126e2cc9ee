package analytics

import (
	"fmt"
	"math"

	"github.com/adamlaw669/Curio/internal/catalog"
)

const (
	reportConcepts  = 6
	reportAreaLimit = 3
	timelineLength  = 7
	weakUpperBound  = 60.0
)

// ConceptScore pairs a concept with the student's mastery of it.
type ConceptScore struct {
	Concept catalog.Concept
	Score   float64
	HasData bool
	Band    MasteryBand
}

// Report is the instructor-facing summary of one student.
type Report struct {
	Student         catalog.User
	Profile         *catalog.StudentProfile
	AverageScore    float64
	EngagementMins  int
	AssessmentCount int
	AtRisk          bool
	Concepts        []ConceptScore
	WeakAreas       []ConceptScore
	StrongAreas     []ConceptScore
	Timeline        []catalog.Assessment
}

// StudentReport summarises a student's performance. Concept breakdowns
// cover the first six catalog concepts; weak areas have data and score
// below 60, strong areas 80 and up, at most three of each. The timeline
// holds the last seven assessments in log order.
func (s *Service) StudentReport(studentID string) (Report, error) {
	u, ok := s.cat.FindStudent(studentID)
	if !ok {
		return Report{}, fmt.Errorf("student %q: %w", studentID, ErrUnknownStudent)
	}

	log := s.studentLog(studentID)
	r := Report{
		Student:         u,
		AverageScore:    roundedMean(log),
		AssessmentCount: len(log),
		AtRisk:          s.IsAtRisk(studentID),
	}
	if p, ok := s.cat.FindProfile(studentID); ok {
		r.Profile = &p
	}
	for _, e := range s.cat.EngagementFor(studentID) {
		r.EngagementMins += e.Minutes
	}

	concepts := s.cat.Concepts()
	if len(concepts) > reportConcepts {
		concepts = concepts[:reportConcepts]
	}
	for _, c := range concepts {
		score, ok := s.Mastery(studentID, c.ID)
		cs := ConceptScore{Concept: c, Score: score, HasData: ok, Band: BandFor(score, ok)}
		r.Concepts = append(r.Concepts, cs)
		switch {
		case !ok:
		case score < weakUpperBound && len(r.WeakAreas) < reportAreaLimit:
			r.WeakAreas = append(r.WeakAreas, cs)
		case score >= 80 && len(r.StrongAreas) < reportAreaLimit:
			r.StrongAreas = append(r.StrongAreas, cs)
		}
	}

	if len(log) > timelineLength {
		log = log[len(log)-timelineLength:]
	}
	r.Timeline = log
	return r, nil
}

// CohortSummary is the headline numbers for one cohort.
type CohortSummary struct {
	Cohort         catalog.Cohort
	Instructor     catalog.User
	MemberCount    int
	Missing        []string
	AtRiskCount    int
	AverageScore   float64
	EngagementMins int
}

// CohortSummary aggregates a cohort's members. The average covers every
// assessment by a resolvable member, rounded to the nearest integer. The
// bool is false when the cohort is unknown.
func (s *Service) CohortSummary(cohortID string) (CohortSummary, bool) {
	cohort, ok := s.cat.FindCohort(cohortID)
	if !ok {
		return CohortSummary{}, false
	}
	members := s.cat.ListCohortMembers(cohortID)
	sum := CohortSummary{
		Cohort:      cohort,
		MemberCount: len(members.Members),
		Missing:     members.Missing,
		AtRiskCount: len(s.AtRiskStudents(cohortID)),
	}
	sum.Instructor, _ = s.cat.FindInstructor(cohort.InstructorID)

	var all []catalog.Assessment
	for _, u := range members.Members {
		all = append(all, s.studentLog(u.ID)...)
		for _, e := range s.cat.EngagementFor(u.ID) {
			sum.EngagementMins += e.Minutes
		}
	}
	sum.AverageScore = roundedMean(all)
	return sum, true
}

func roundedMean(as []catalog.Assessment) float64 {
	if len(as) == 0 {
		return 0
	}
	var total float64
	for _, a := range as {
		total += a.Score
	}
	return math.Round(total / float64(len(as)))
}
