package analytics

import "github.com/adamlaw669/Curio/internal/catalog"

// Matrix maps studentID -> conceptID -> mastery.
type Matrix map[string]map[string]float64

// CohortConceptMastery computes mastery for every resolvable cohort member
// over the full concept catalog. Concepts without data map to 0. Members
// that do not resolve to a student are skipped. An unknown cohort yields
// an empty matrix.
func (s *Service) CohortConceptMastery(cohortID string) Matrix {
	out := Matrix{}
	members := s.cat.ListCohortMembers(cohortID)
	concepts := s.cat.Concepts()
	for _, u := range members.Members {
		row := make(map[string]float64, len(concepts))
		for _, c := range concepts {
			row[c.ID] = s.ConceptMastery(u.ID, c.ID)
		}
		out[u.ID] = row
	}
	return out
}

// Cell is one student × concept entry in a Heatmap.
type Cell struct {
	ConceptID string
	Score     float64
	HasData   bool
	Band      MasteryBand
}

// HeatmapRow is one student's line in a Heatmap.
type HeatmapRow struct {
	Student catalog.User
	Cells   []Cell
}

// Heatmap is a cohort's mastery grid restricted to one topic.
type Heatmap struct {
	CohortID string
	Topic    string
	Concepts []catalog.Concept
	Rows     []HeatmapRow
	Missing  []string
}

// Heatmap builds the mastery grid for the cohort's members over the
// concepts of topic (catalog.AllTopics for every concept). Rows follow
// membership order and cells follow catalog order.
func (s *Service) Heatmap(cohortID, topic string) Heatmap {
	members := s.cat.ListCohortMembers(cohortID)
	h := Heatmap{
		CohortID: cohortID,
		Topic:    topic,
		Concepts: s.cat.ConceptsByTopic(topic),
		Missing:  members.Missing,
	}
	for _, u := range members.Members {
		row := HeatmapRow{Student: u, Cells: make([]Cell, len(h.Concepts))}
		for i, c := range h.Concepts {
			score, ok := s.Mastery(u.ID, c.ID)
			row.Cells[i] = Cell{ConceptID: c.ID, Score: score, HasData: ok, Band: BandFor(score, ok)}
		}
		h.Rows = append(h.Rows, row)
	}
	return h
}
