package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamlaw669/Curio/internal/catalog"
)

func testCatalog(assessments ...catalog.Assessment) *catalog.Catalog {
	return catalog.New(catalog.Data{
		Users: []catalog.User{
			{ID: "s1", Name: "Ada", Role: catalog.RoleStudent},
			{ID: "s2", Name: "Ben", Role: catalog.RoleStudent},
			{ID: "s3", Name: "Cy", Role: catalog.RoleStudent},
			{ID: "t1", Name: "Teach", Role: catalog.RoleInstructor},
		},
		Concepts: []catalog.Concept{
			{ID: "c1", Name: "One", Topic: "Algebra"},
			{ID: "c2", Name: "Two", Topic: "Algebra"},
			{ID: "c3", Name: "Three", Topic: "Geometry"},
		},
		Cohorts: []catalog.Cohort{
			{ID: "k", StudentIDs: []string{"s1", "s2", "ghost", "s3"}, InstructorID: "t1"},
		},
		Assessments: assessments,
	})
}

func score(id, student, concept string, v float64) catalog.Assessment {
	return catalog.Assessment{ID: id, StudentID: student, ConceptID: concept, Score: v, Date: "2024-01-15"}
}

func TestConceptMastery(t *testing.T) {
	svc := New(testCatalog(
		score("a1", "s1", "c1", 92),
		score("a2", "s1", "c1", 88),
		score("a3", "s1", "c2", 0),
	))

	tests := []struct {
		name    string
		student string
		concept string
		want    float64
		wantOK  bool
	}{
		{"mean of scores", "s1", "c1", 90, true},
		{"genuine zero", "s1", "c2", 0, true},
		{"no data", "s1", "c3", 0, false},
		{"unknown student", "nobody", "c1", 0, false},
		{"unknown concept", "s1", "nope", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ConceptMastery(tt.student, tt.concept))
			got, ok := svc.Mastery(tt.student, tt.concept)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestConceptMastery_SeesLaterAppends(t *testing.T) {
	cat := testCatalog(score("a1", "s1", "c1", 92))
	svc := New(cat)
	assert.Equal(t, 92.0, svc.ConceptMastery("s1", "c1"))

	require.NoError(t, cat.AppendAssessment(score("a2", "s1", "c1", 88)))
	assert.Equal(t, 90.0, svc.ConceptMastery("s1", "c1"))
}

func TestAtRiskStudents(t *testing.T) {
	svc := New(testCatalog(
		score("a1", "s1", "c1", 92),
		score("a2", "s1", "c2", 45),
		score("a3", "s1", "c3", 30),

		score("b1", "s2", "c1", 92),
		score("b2", "s2", "c2", 45),
		score("b3", "s2", "c3", 88),

		score("g1", "ghost", "c1", 10),
		score("g2", "ghost", "c1", 20),

		score("d1", "s3", "c1", 50),
		score("d2", "s3", "c1", 50),
	))

	assert.Equal(t, []string{"s1", "ghost"}, svc.AtRiskStudents("k"))
	assert.True(t, svc.IsAtRisk("s1"))
	assert.False(t, svc.IsAtRisk("s3"), "50 is not below the threshold")
}

func TestAtRiskStudents_UnknownCohort(t *testing.T) {
	svc := New(testCatalog())
	got := svc.AtRiskStudents("missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCohortConceptMastery(t *testing.T) {
	svc := New(testCatalog(score("a1", "s1", "c1", 70)))

	m := svc.CohortConceptMastery("k")
	require.Len(t, m, 3, "ghost is skipped")
	for student, row := range m {
		assert.Len(t, row, 3, student)
		for _, c := range []string{"c1", "c2", "c3"} {
			assert.Contains(t, row, c)
		}
	}
	assert.Equal(t, 70.0, m["s1"]["c1"])
	assert.Equal(t, 0.0, m["s2"]["c3"])

	assert.Empty(t, svc.CohortConceptMastery("missing"))
}

func TestReadsAreIdempotent(t *testing.T) {
	svc := New(catalog.Default())

	assert.Equal(t, svc.CohortConceptMastery("math-foundations"), svc.CohortConceptMastery("math-foundations"))
	assert.Equal(t, svc.AtRiskStudents("tech-101"), svc.AtRiskStudents("tech-101"))
	assert.Equal(t, svc.ConceptMastery("std-1", "algebra-basic"), svc.ConceptMastery("std-1", "algebra-basic"))
}

func TestSeedCatalog(t *testing.T) {
	svc := New(catalog.Default())

	assert.Equal(t, 92.0, svc.ConceptMastery("std-1", "algebra-basic"))
	assert.Empty(t, svc.AtRiskStudents("math-foundations"))
	assert.Len(t, svc.CohortConceptMastery("tech-101"), 6)
}
