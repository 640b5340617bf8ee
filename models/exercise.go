package models

import "time"

// Difficulty orders exercises from easiest to hardest.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Ordinal returns the sort rank of a difficulty (EASY < MEDIUM < HARD).
// Unrecognized values sort last.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return 3
}

// Exercise is a catalog entry a physiotherapist can assign to plans.
type Exercise struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	Category    string     `bson:"category" json:"category"`
	Difficulty  Difficulty `bson:"difficulty" json:"difficulty"`
	ImageURL    string     `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL    string     `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedBy   string     `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// PlanStatus is the persisted state of an exercise plan. "Expired" is a
// derived notion (see ExercisePlan.Expired), never a stored transition.
type PlanStatus string

const (
	PlanActive    PlanStatus = "ACTIVE"
	PlanCompleted PlanStatus = "COMPLETED"
	PlanCancelled PlanStatus = "CANCELLED"
)

// ExercisePlanItem is one prescribed exercise inside a plan.
type ExercisePlanItem struct {
	ExerciseID string `bson:"exerciseId" json:"exerciseId"`
	Name       string `bson:"name" json:"name"`
	Sets       int    `bson:"sets" json:"sets"`
	Reps       int    `bson:"reps" json:"reps"`
	Duration   int    `bson:"duration,omitempty" json:"duration,omitempty"` // seconds
	ImageURL   string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL   string `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ExercisePlan is a prescribed program for a patient.
type ExercisePlan struct {
	ID                string             `bson:"id" json:"id"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	PatientID         string             `bson:"patientId" json:"patientId"`
	PatientName       string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	PhysiotherapistID string             `bson:"physiotherapistId" json:"physiotherapistId"`
	Items             []ExercisePlanItem `bson:"items" json:"items"`
	StartDate         time.Time          `bson:"startDate" json:"startDate"`
	EndDate           time.Time          `bson:"endDate" json:"endDate"`
	Frequency         string             `bson:"frequency,omitempty" json:"frequency,omitempty"` // free text, e.g. "3x / hafta"
	Status            PlanStatus         `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// Expired reports whether an active plan's end date has passed. The stored
// status is left untouched.
func (p ExercisePlan) Expired(now time.Time) bool {
	return p.Status == PlanActive && !p.EndDate.IsZero() && p.EndDate.Before(now)
}
