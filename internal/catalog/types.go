package catalog

import "time"

// Role distinguishes learners from the instructors who own cohorts.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// Level is a student's self-reported proficiency.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ContentType is how a module delivers its material.
type ContentType string

const (
	ContentVideo       ContentType = "video"
	ContentText        ContentType = "text"
	ContentInteractive ContentType = "interactive"
)

// Difficulty is a module's difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// DateLayout is the calendar-date format used by assessments and engagement.
const DateLayout = "2006-01-02"

type User struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Role  Role   `json:"role" validate:"oneof=student instructor"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Preferences are the content styles a student likes plus a daily time
// budget category ("15-30", "30-60" or "60+" minutes).
type Preferences struct {
	Styles     []string `json:"style" validate:"dive,oneof=video text interactive"`
	TimePerDay string   `json:"timePerDay" validate:"omitempty,oneof=15-30 30-60 60+"`
}

type StudentProfile struct {
	UserID      string      `json:"userId" validate:"required"`
	Level       Level       `json:"level" validate:"oneof=beginner intermediate advanced"`
	Preferences Preferences `json:"preferences"`
	Goals       string      `json:"goals"`
}

// Concept is the finest grain at which mastery is measured.
type Concept struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic,omitempty"`
}

// Module is a consumable learning unit teaching one or more concepts.
// Video modules carry ContentURL; text modules carry TextContent.
type Module struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	ContentType ContentType `json:"contentType"`
	ContentURL  string      `json:"contentURL,omitempty"`
	TextContent string      `json:"textContent,omitempty"`
	Concepts    []string    `json:"concepts"`
	Difficulty  Difficulty  `json:"difficulty"`
	EstTimeMins int         `json:"estTimeMins"`
	Description string      `json:"description"`
}

// Course is an ordered list of modules owned by one instructor.
type Course struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Modules      []string `json:"modules"`
	InstructorID string   `json:"instructorId"`
}

// Cohort is an instructor-owned group of students.
type Cohort struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	StudentIDs   []string `json:"studentIds"`
	InstructorID string   `json:"instructorId"`
	Description  string   `json:"description"`
}

// Assessment is an immutable scored attempt at a concept.
type Assessment struct {
	ID        string  `json:"id" validate:"required"`
	StudentID string  `json:"studentId" validate:"required"`
	ConceptID string  `json:"conceptId" validate:"required"`
	Score     float64 `json:"score" validate:"gte=0,lte=100"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	ModuleID  string  `json:"moduleId,omitempty"`
}

// Engagement is an immutable unit of time-on-task.
type Engagement struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Minutes   int    `json:"minutes" validate:"gte=0"`
	ModuleID  string `json:"moduleId,omitempty"`
}

// Recommendation suggests a module to a student. Lower Priority values
// are more important and sort first.
type Recommendation struct {
	ID        string    `json:"id" validate:"required"`
	StudentID string    `json:"studentId" validate:"required"`
	ModuleID  string    `json:"moduleId" validate:"required"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	Priority  int       `json:"priority" validate:"gte=1"`
}

// Data is the full set of records a Catalog is built from.
type Data struct {
	Users           []User
	Profiles        []StudentProfile
	Concepts        []Concept
	Modules         []Module
	Courses         []Course
	Cohorts         []Cohort
	Assessments     []Assessment
	Engagement      []Engagement
	Recommendations []Recommendation
}
