package analytics

const (
	// LowScoreThreshold is the exclusive upper bound of a low score.
	LowScoreThreshold = 50.0

	// MinLowScores is how many low scores make a student at risk.
	MinLowScores = 2
)

// AtRiskStudents returns the ids of cohort members with at least
// MinLowScores assessments scoring below LowScoreThreshold, in membership
// order. Member ids are taken from the cohort as-is, so an id with no user
// record can still be flagged if it has assessments. An unknown cohort
// yields an empty slice.
func (s *Service) AtRiskStudents(cohortID string) []string {
	out := []string{}
	cohort, ok := s.cat.FindCohort(cohortID)
	if !ok {
		return out
	}
	for _, id := range cohort.StudentIDs {
		if s.lowScoreCount(id) >= MinLowScores {
			out = append(out, id)
		}
	}
	return out
}

// IsAtRisk reports whether the student meets the at-risk rule regardless
// of cohort membership.
func (s *Service) IsAtRisk(studentID string) bool {
	return s.lowScoreCount(studentID) >= MinLowScores
}

func (s *Service) lowScoreCount(studentID string) int {
	n := 0
	for _, a := range s.studentLog(studentID) {
		if a.Score < LowScoreThreshold {
			n++
		}
	}
	return n
}
