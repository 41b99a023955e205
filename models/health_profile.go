package models

import (
	"time"

	"github.com/google/uuid"
)

// SleepPattern represents a user's typical sleep schedule
type SleepPattern string

const (
	SleepEarlyBird SleepPattern = "early_bird"
	SleepNightOwl  SleepPattern = "night_owl"
	SleepIrregular SleepPattern = "irregular"
)

// Valid reports whether the value is a recognized sleep pattern
func (p SleepPattern) Valid() bool {
	switch p {
	case SleepEarlyBird, SleepNightOwl, SleepIrregular:
		return true
	}
	return false
}

// HydrationLevel represents a user's self-reported hydration
type HydrationLevel string

const (
	HydrationPoor     HydrationLevel = "poor"
	HydrationModerate HydrationLevel = "moderate"
	HydrationGood     HydrationLevel = "good"
)

// Valid reports whether the value is a recognized hydration level
func (h HydrationLevel) Valid() bool {
	switch h {
	case HydrationPoor, HydrationModerate, HydrationGood:
		return true
	}
	return false
}

// StressLevel represents a user's self-reported stress
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

// Valid reports whether the value is a recognized stress level
func (s StressLevel) Valid() bool {
	switch s {
	case StressLow, StressModerate, StressHigh:
		return true
	}
	return false
}

// ExerciseFrequency represents how often a user exercises
type ExerciseFrequency string

const (
	ExerciseNever      ExerciseFrequency = "never"
	ExerciseOccasional ExerciseFrequency = "occasional"
	ExerciseRegular    ExerciseFrequency = "regular"
	ExerciseDaily      ExerciseFrequency = "daily"
)

// Valid reports whether the value is a recognized exercise frequency
func (e ExerciseFrequency) Valid() bool {
	switch e {
	case ExerciseNever, ExerciseOccasional, ExerciseRegular, ExerciseDaily:
		return true
	}
	return false
}

// DietType represents a user's diet
type DietType string

const (
	DietBalanced   DietType = "balanced"
	DietVegetarian DietType = "vegetarian"
	DietVegan      DietType = "vegan"
	DietFastFood   DietType = "fast_food"
	DietOther      DietType = "other"
)

// Valid reports whether the value is a recognized diet type
func (d DietType) Valid() bool {
	switch d {
	case DietBalanced, DietVegetarian, DietVegan, DietFastFood, DietOther:
		return true
	}
	return false
}

// HealthProfile is the single health profile kept per user. Exactly zero or
// one row exists per user_id; writes are upserts keyed on user_id.
type HealthProfile struct {
	ID                 uuid.UUID         `json:"id"`
	UserID             uuid.UUID         `json:"user_id"`
	SleepPattern       SleepPattern      `json:"sleep_pattern"`
	SleepHours         int               `json:"sleep_hours"`
	HydrationLevel     HydrationLevel    `json:"hydration_level"`
	StressLevel        StressLevel       `json:"stress_level"`
	ExerciseFrequency  ExerciseFrequency `json:"exercise_frequency"`
	DietType           DietType          `json:"diet_type"`
	ExistingConditions *string           `json:"existing_conditions"`
	LifestyleNotes     *string           `json:"lifestyle_notes"`
	HealthPersona      string            `json:"health_persona"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
