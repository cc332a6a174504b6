// ABOUTME: Workout model for exercise tracking.
// ABOUTME: A workout is a dated session with duration and calories burned.
package models

import "time"

// Workout represents a logged exercise session.
type Workout struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Type      string    `json:"type" yaml:"type"`
	Duration  int       `json:"duration" yaml:"duration"`
	Calories  int       `json:"calories" yaml:"calories"`
	Notes     string    `json:"notes" yaml:"notes"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// WorkoutInput carries the fields accepted when logging a workout.
// Pointer fields distinguish an absent value from zero.
type WorkoutInput struct {
	Date     string `json:"date" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Duration *int   `json:"duration" validate:"required"`
	Calories *int   `json:"calories" validate:"required"`
	Notes    string `json:"notes"`
}

// WorkoutTotals holds lifetime workout aggregates.
type WorkoutTotals struct {
	Count    int64
	Calories int64
	Duration int64
}
