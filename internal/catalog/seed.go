package catalog

import "time"

// Default returns a catalog populated with the built-in seed records.
// Each call returns an independent catalog.
func Default() *Catalog {
	return New(SeedData())
}

// SeedData returns fresh copies of the built-in records.
func SeedData() Data {
	return Data{
		Users:           seedUsers(),
		Profiles:        seedProfiles(),
		Concepts:        seedConcepts(),
		Modules:         seedModules(),
		Courses:         seedCourses(),
		Cohorts:         seedCohorts(),
		Assessments:     seedAssessments(),
		Engagement:      seedEngagement(),
		Recommendations: seedRecommendations(),
	}
}

func seedUsers() []User {
	return []User{
		{ID: "inst-1", Name: "Dr. Sarah Smith", Role: RoleInstructor, Email: "sarah.smith@curio.edu"},
		{ID: "inst-2", Name: "Prof. Michael Johnson", Role: RoleInstructor, Email: "michael.johnson@curio.edu"},

		{ID: "std-1", Name: "Emma Johnson", Role: RoleStudent, Email: "emma.j@student.edu"},
		{ID: "std-2", Name: "Michael Chen", Role: RoleStudent, Email: "michael.c@student.edu"},
		{ID: "std-3", Name: "Sarah Williams", Role: RoleStudent, Email: "sarah.w@student.edu"},
		{ID: "std-4", Name: "David Rodriguez", Role: RoleStudent, Email: "david.r@student.edu"},
		{ID: "std-5", Name: "Lisa Thompson", Role: RoleStudent, Email: "lisa.t@student.edu"},
		{ID: "std-6", Name: "James Wilson", Role: RoleStudent, Email: "james.w@student.edu"},
		{ID: "std-7", Name: "Maria Garcia", Role: RoleStudent, Email: "maria.g@student.edu"},
		{ID: "std-8", Name: "Robert Brown", Role: RoleStudent, Email: "robert.b@student.edu"},
		{ID: "std-9", Name: "Jennifer Davis", Role: RoleStudent, Email: "jennifer.d@student.edu"},
		{ID: "std-10", Name: "Christopher Miller", Role: RoleStudent, Email: "chris.m@student.edu"},
		{ID: "std-11", Name: "Amanda Taylor", Role: RoleStudent, Email: "amanda.t@student.edu"},
		{ID: "std-12", Name: "Daniel Anderson", Role: RoleStudent, Email: "daniel.a@student.edu"},
	}
}

func seedProfiles() []StudentProfile {
	p := func(id string, level Level, styles []string, time, goals string) StudentProfile {
		return StudentProfile{
			UserID:      id,
			Level:       level,
			Preferences: Preferences{Styles: styles, TimePerDay: time},
			Goals:       goals,
		}
	}
	return []StudentProfile{
		p("std-1", LevelAdvanced, []string{"video", "interactive"}, "30-60", "Master calculus concepts"),
		p("std-2", LevelIntermediate, []string{"text", "video"}, "15-30", "Improve algebra skills"),
		p("std-3", LevelBeginner, []string{"video"}, "30-60", "Build strong math foundation"),
		p("std-4", LevelIntermediate, []string{"interactive"}, "60+", "Excel in geometry"),
		p("std-5", LevelBeginner, []string{"video", "text"}, "15-30", "Understand fractions better"),
		p("std-6", LevelAdvanced, []string{"text", "interactive"}, "60+", "Prepare for advanced mathematics"),
		p("std-7", LevelIntermediate, []string{"video"}, "30-60", "Master linear equations"),
		p("std-8", LevelBeginner, []string{"interactive"}, "15-30", "Learn basic arithmetic"),
		p("std-9", LevelIntermediate, []string{"text"}, "30-60", "Improve problem solving"),
		p("std-10", LevelAdvanced, []string{"video", "interactive"}, "60+", "Advanced algebra mastery"),
		p("std-11", LevelBeginner, []string{"video"}, "15-30", "Basic geometry understanding"),
		p("std-12", LevelIntermediate, []string{"text", "interactive"}, "30-60", "Statistics fundamentals"),
	}
}

func seedConcepts() []Concept {
	return []Concept{
		{ID: "algebra-basic", Name: "Basic Algebra", Topic: "Algebra"},
		{ID: "algebra-linear", Name: "Linear Equations", Topic: "Algebra", Subtopic: "Equations"},
		{ID: "algebra-quadratic", Name: "Quadratic Functions", Topic: "Algebra", Subtopic: "Functions"},
		{ID: "geometry-shapes", Name: "Basic Shapes", Topic: "Geometry"},
		{ID: "geometry-area", Name: "Area Calculations", Topic: "Geometry", Subtopic: "Measurement"},
		{ID: "geometry-volume", Name: "Volume Calculations", Topic: "Geometry", Subtopic: "Measurement"},
		{ID: "fractions-basic", Name: "Understanding Fractions", Topic: "Fractions"},
		{ID: "fractions-operations", Name: "Fraction Operations", Topic: "Fractions", Subtopic: "Operations"},
		{ID: "statistics-intro", Name: "Introduction to Statistics", Topic: "Statistics"},
		{ID: "statistics-probability", Name: "Basic Probability", Topic: "Statistics", Subtopic: "Probability"},
		{ID: "calculus-limits", Name: "Limits", Topic: "Calculus"},
		{ID: "calculus-derivatives", Name: "Derivatives", Topic: "Calculus", Subtopic: "Differentiation"},
		{ID: "arithmetic-basic", Name: "Basic Arithmetic", Topic: "Arithmetic"},
		{ID: "trigonometry-basic", Name: "Basic Trigonometry", Topic: "Trigonometry"},
	}
}

func seedModules() []Module {
	return []Module{
		{
			ID:          "geometry-basics",
			Title:       "Geometry Fundamentals",
			ContentType: ContentText,
			TextContent: "Learn the basic principles of geometry...",
			Concepts:    []string{"geometry-shapes", "geometry-area"},
			Difficulty:  DifficultyBeginner,
			EstTimeMins: 12,
			Description: "Learn the basic principles of geometry including shapes, angles, and area calculations.",
		},
		{
			ID:          "fraction-practice",
			Title:       "Fraction Operations Practice",
			ContentType: ContentInteractive,
			Concepts:    []string{"fractions-basic", "fractions-operations"},
			Difficulty:  DifficultyBeginner,
			EstTimeMins: 8,
			Description: "Master fraction operations through interactive practice problems.",
		},
		{
			ID:          "algebra-review",
			Title:       "Algebra Fundamentals Review",
			ContentType: ContentVideo,
			ContentURL:  "https://www.youtube.com/embed/NybHckSEQBI",
			Concepts:    []string{"algebra-basic", "algebra-linear"},
			Difficulty:  DifficultyIntermediate,
			EstTimeMins: 10,
			Description: "Review key algebraic concepts including solving equations and working with variables.",
		},
		{
			ID:          "linear-equations",
			Title:       "Solving Linear Equations",
			ContentType: ContentText,
			TextContent: "Linear equations are fundamental to algebra...",
			Concepts:    []string{"algebra-linear"},
			Difficulty:  DifficultyIntermediate,
			EstTimeMins: 15,
			Description: "Master the techniques for solving linear equations step by step.",
		},
		{
			ID:          "quadratic-intro",
			Title:       "Introduction to Quadratic Functions",
			ContentType: ContentVideo,
			ContentURL:  "https://www.youtube.com/embed/example",
			Concepts:    []string{"algebra-quadratic"},
			Difficulty:  DifficultyAdvanced,
			EstTimeMins: 20,
			Description: "Explore quadratic functions, their graphs, and real-world applications.",
		},
		{
			ID:          "statistics-basics",
			Title:       "Statistics Fundamentals",
			ContentType: ContentInteractive,
			Concepts:    []string{"statistics-intro"},
			Difficulty:  DifficultyBeginner,
			EstTimeMins: 18,
			Description: "Learn basic statistical concepts including mean, median, and mode.",
		},
		{
			ID:          "probability-intro",
			Title:       "Introduction to Probability",
			ContentType: ContentText,
			TextContent: "Probability is the study of chance...",
			Concepts:    []string{"statistics-probability"},
			Difficulty:  DifficultyIntermediate,
			EstTimeMins: 14,
			Description: "Understand probability concepts and how to calculate simple probabilities.",
		},
		{
			ID:          "calculus-limits",
			Title:       "Understanding Limits",
			ContentType: ContentVideo,
			ContentURL:  "https://www.youtube.com/embed/example2",
			Concepts:    []string{"calculus-limits"},
			Difficulty:  DifficultyAdvanced,
			EstTimeMins: 25,
			Description: "Introduction to limits and their role in calculus.",
		},
		{
			ID:          "trigonometry-basics",
			Title:       "Basic Trigonometry",
			ContentType: ContentInteractive,
			Concepts:    []string{"trigonometry-basic"},
			Difficulty:  DifficultyIntermediate,
			EstTimeMins: 16,
			Description: "Learn sine, cosine, and tangent functions.",
		},
		{
			ID:          "arithmetic-review",
			Title:       "Arithmetic Review",
			ContentType: ContentText,
			TextContent: "Review basic arithmetic operations...",
			Concepts:    []string{"arithmetic-basic"},
			Difficulty:  DifficultyBeginner,
			EstTimeMins: 8,
			Description: "Strengthen your foundation with basic arithmetic operations.",
		},
	}
}

func seedCourses() []Course {
	return []Course{
		{
			ID:           "math-foundations",
			Title:        "Math Foundations",
			Description:  "Core mathematical concepts for high school students",
			Modules:      []string{"arithmetic-review", "fraction-practice", "geometry-basics", "algebra-review"},
			InstructorID: "inst-1",
		},
		{
			ID:           "advanced-algebra",
			Title:        "Advanced Algebra",
			Description:  "Complex algebraic concepts and problem solving",
			Modules:      []string{"linear-equations", "quadratic-intro"},
			InstructorID: "inst-1",
		},
		{
			ID:           "statistics-course",
			Title:        "Introduction to Statistics",
			Description:  "Basic statistical concepts and probability",
			Modules:      []string{"statistics-basics", "probability-intro"},
			InstructorID: "inst-2",
		},
	}
}

func seedCohorts() []Cohort {
	return []Cohort{
		{
			ID:           "math-foundations",
			Name:         "Math Foundations",
			StudentIDs:   []string{"std-1", "std-2", "std-3", "std-4", "std-5", "std-6"},
			InstructorID: "inst-1",
			Description:  "High school students building foundational math skills",
		},
		{
			ID:           "tech-101",
			Name:         "Tech 101",
			StudentIDs:   []string{"std-7", "std-8", "std-9", "std-10", "std-11", "std-12"},
			InstructorID: "inst-2",
			Description:  "Introduction to technology and mathematical applications",
		},
	}
}

func seedAssessments() []Assessment {
	return []Assessment{
		// Strong performers
		{ID: "assess-1", StudentID: "std-1", ConceptID: "algebra-basic", Score: 92, Date: "2024-01-15", ModuleID: "algebra-review"},
		{ID: "assess-2", StudentID: "std-1", ConceptID: "geometry-shapes", Score: 88, Date: "2024-01-14", ModuleID: "geometry-basics"},
		{ID: "assess-3", StudentID: "std-6", ConceptID: "algebra-linear", Score: 95, Date: "2024-01-13", ModuleID: "linear-equations"},

		// Mixed performers
		{ID: "assess-4", StudentID: "std-2", ConceptID: "algebra-basic", Score: 67, Date: "2024-01-15", ModuleID: "algebra-review"},
		{ID: "assess-5", StudentID: "std-2", ConceptID: "fractions-basic", Score: 45, Date: "2024-01-12", ModuleID: "fraction-practice"},
		{ID: "assess-6", StudentID: "std-4", ConceptID: "geometry-area", Score: 78, Date: "2024-01-14", ModuleID: "geometry-basics"},

		// Struggling performers
		{ID: "assess-7", StudentID: "std-3", ConceptID: "arithmetic-basic", Score: 34, Date: "2024-01-16", ModuleID: "arithmetic-review"},
		{ID: "assess-8", StudentID: "std-5", ConceptID: "fractions-basic", Score: 28, Date: "2024-01-13", ModuleID: "fraction-practice"},
		{ID: "assess-9", StudentID: "std-8", ConceptID: "algebra-basic", Score: 41, Date: "2024-01-15", ModuleID: "algebra-review"},

		{ID: "assess-10", StudentID: "std-7", ConceptID: "statistics-intro", Score: 82, Date: "2024-01-14", ModuleID: "statistics-basics"},
		// probability-basic is not in the concept catalog; Validate reports it.
		{ID: "assess-11", StudentID: "std-9", ConceptID: "probability-basic", Score: 76, Date: "2024-01-13", ModuleID: "probability-intro"},
		{ID: "assess-12", StudentID: "std-10", ConceptID: "calculus-limits", Score: 89, Date: "2024-01-12", ModuleID: "calculus-limits"},
	}
}

func seedRecommendations() []Recommendation {
	at := func(hour, min int) time.Time {
		return time.Date(2024, time.January, 16, hour, min, 0, 0, time.UTC)
	}
	return []Recommendation{
		{ID: "rec-1", StudentID: "std-1", ModuleID: "quadratic-intro", Reason: "You've mastered algebra fundamentals. Ready for the next challenge!", CreatedAt: at(10, 0), Priority: 1},
		{ID: "rec-2", StudentID: "std-2", ModuleID: "fraction-practice", Reason: "Selected due to mixed performance in recent fraction problems.", CreatedAt: at(9, 30), Priority: 2},
		{ID: "rec-3", StudentID: "std-3", ModuleID: "arithmetic-review", Reason: "Let's reinforce these fundamental skills first.", CreatedAt: at(9, 0), Priority: 3},
		{ID: "rec-4", StudentID: "std-4", ModuleID: "geometry-basics", Reason: "Building on your strong geometry foundation.", CreatedAt: at(8, 30), Priority: 1},
		{ID: "rec-5", StudentID: "std-5", ModuleID: "fraction-practice", Reason: "Selected due to low accuracy in recent quiz on fractions.", CreatedAt: at(8, 0), Priority: 3},
	}
}

func seedEngagement() []Engagement {
	return []Engagement{
		{StudentID: "std-1", Date: "2024-01-15", Minutes: 45, ModuleID: "algebra-review"},
		{StudentID: "std-1", Date: "2024-01-14", Minutes: 32, ModuleID: "geometry-basics"},
		{StudentID: "std-1", Date: "2024-01-13", Minutes: 28, ModuleID: "quadratic-intro"},

		{StudentID: "std-2", Date: "2024-01-15", Minutes: 23, ModuleID: "fraction-practice"},
		{StudentID: "std-2", Date: "2024-01-14", Minutes: 18, ModuleID: "algebra-review"},
		{StudentID: "std-2", Date: "2024-01-13", Minutes: 35, ModuleID: "geometry-basics"},

		{StudentID: "std-3", Date: "2024-01-15", Minutes: 15, ModuleID: "arithmetic-review"},
		{StudentID: "std-3", Date: "2024-01-14", Minutes: 12, ModuleID: "fraction-practice"},
		{StudentID: "std-3", Date: "2024-01-13", Minutes: 20, ModuleID: "arithmetic-review"},

		{StudentID: "std-4", Date: "2024-01-15", Minutes: 38, ModuleID: "geometry-basics"},
		{StudentID: "std-5", Date: "2024-01-15", Minutes: 22, ModuleID: "fraction-practice"},
		{StudentID: "std-6", Date: "2024-01-15", Minutes: 52, ModuleID: "calculus-limits"},
		{StudentID: "std-7", Date: "2024-01-15", Minutes: 41, ModuleID: "statistics-basics"},
		{StudentID: "std-8", Date: "2024-01-15", Minutes: 16, ModuleID: "arithmetic-review"},
		{StudentID: "std-9", Date: "2024-01-15", Minutes: 33, ModuleID: "probability-intro"},
		{StudentID: "std-10", Date: "2024-01-15", Minutes: 47, ModuleID: "linear-equations"},
	}
}
