package onboarding

// Question is a diagnostic multiple-choice question.
type Question struct {
	ID        string
	Concept   string
	ConceptID string // catalog concept the question tests
	Prompt    string
	Options   []string
	Correct   int
}

var diagnostic = []Question{
	{
		ID: "algebra1", Concept: "Basic Algebra", ConceptID: "algebra-basic",
		Prompt:  "Solve for x: 2x + 5 = 13",
		Options: []string{"x = 4", "x = 6", "x = 9", "x = 3"},
		Correct: 0,
	},
	{
		ID: "fractions", Concept: "Fractions", ConceptID: "fractions-operations",
		Prompt:  "What is 3/4 + 1/8?",
		Options: []string{"7/8", "4/12", "1/2", "5/6"},
		Correct: 0,
	},
	{
		ID: "geometry", Concept: "Geometry", ConceptID: "geometry-area",
		Prompt:  "What is the area of a rectangle with length 8 and width 5?",
		Options: []string{"40", "26", "13", "35"},
		Correct: 0,
	},
	{
		ID: "percentages", Concept: "Percentages", ConceptID: "arithmetic-basic",
		Prompt:  "What is 25% of 80?",
		Options: []string{"20", "25", "15", "30"},
		Correct: 0,
	},
	{
		ID: "equations", Concept: "Linear Equations", ConceptID: "algebra-linear",
		Prompt:  "Which point lies on the line y = 2x + 1?",
		Options: []string{"(2, 5)", "(1, 4)", "(3, 6)", "(0, 2)"},
		Correct: 0,
	},
}

// Questions returns the diagnostic questions in display order.
func Questions() []Question {
	out := make([]Question, len(diagnostic))
	copy(out, diagnostic)
	return out
}
