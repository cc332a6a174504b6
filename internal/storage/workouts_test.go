// ABOUTME: Tests for workout create/list/delete operations.
// ABOUTME: Covers ordering, validation rejection, and idempotent delete.
package storage

import (
	"context"
	"testing"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

func TestCreateAndListWorkout(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	in := workoutInput("2024-03-10", "run", 45, 420)
	in.Notes = "tempo"

	id, err := db.CreateWorkout(ctx, in)
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected generated id, got %d", id)
	}

	workouts, err := db.ListWorkouts(ctx)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}

	got := workouts[0]
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Date != "2024-03-10" || got.Type != "run" || got.Duration != 45 || got.Calories != 420 {
		t.Errorf("unexpected workout fields: %+v", got)
	}
	if got.Notes != "tempo" {
		t.Errorf("Notes = %q, want tempo", got.Notes)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreateWorkoutNotesDefaultEmpty(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.CreateWorkout(ctx, workoutInput("2024-03-10", "yoga", 60, 200)); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	workouts, _ := db.ListWorkouts(ctx)
	if workouts[0].Notes != "" {
		t.Errorf("Notes = %q, want empty", workouts[0].Notes)
	}
}

func TestListWorkoutsOrdering(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	db := setupTestDB(t, WithClock(tickingClock(start)))
	ctx := context.Background()

	inputs := []*models.WorkoutInput{
		workoutInput("2024-01-01", "a", 10, 100),
		workoutInput("2024-01-03", "b", 10, 100),
		workoutInput("2024-01-01", "c", 10, 100),
		workoutInput("2024-01-02", "d", 10, 100),
	}
	for _, in := range inputs {
		if _, err := db.CreateWorkout(ctx, in); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
	}

	workouts, err := db.ListWorkouts(ctx)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}

	var order string
	for _, w := range workouts {
		order += w.Type
	}
	if order != "bdca" {
		t.Errorf("order = %s, want bdca", order)
	}
}

func TestCreateWorkoutValidation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *models.WorkoutInput
	}{
		{"missing duration", &models.WorkoutInput{Date: "2024-01-01", Type: "run", Calories: models.Int(100)}},
		{"missing calories", &models.WorkoutInput{Date: "2024-01-01", Type: "run", Duration: models.Int(10)}},
		{"missing date", &models.WorkoutInput{Type: "run", Duration: models.Int(10), Calories: models.Int(100)}},
		{"missing type", &models.WorkoutInput{Date: "2024-01-01", Duration: models.Int(10), Calories: models.Int(100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.CreateWorkout(ctx, tt.input)
			if !models.IsValidationError(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	if n := countRows(t, db, "workouts"); n != 0 {
		t.Errorf("expected no rows after rejected creates, got %d", n)
	}
}

func TestDeleteWorkoutIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	keep, _ := db.CreateWorkout(ctx, workoutInput("2024-01-01", "run", 30, 300))
	drop, _ := db.CreateWorkout(ctx, workoutInput("2024-01-01", "lift", 40, 200))

	for i := 0; i < 2; i++ {
		if err := db.DeleteWorkout(ctx, drop); err != nil {
			t.Fatalf("DeleteWorkout attempt %d failed: %v", i+1, err)
		}
		if n := countRows(t, db, "workouts"); n != 1 {
			t.Errorf("after delete %d: expected 1 row, got %d", i+1, n)
		}
	}

	if err := db.DeleteWorkout(ctx, 99999); err != nil {
		t.Errorf("deleting unknown id should succeed, got %v", err)
	}

	workouts, _ := db.ListWorkouts(ctx)
	if len(workouts) != 1 || workouts[0].ID != keep {
		t.Errorf("expected only workout %d to remain, got %+v", keep, workouts)
	}
}

func TestWorkoutTotalsEmpty(t *testing.T) {
	db := setupTestDB(t)

	totals, err := db.WorkoutTotals(context.Background())
	if err != nil {
		t.Fatalf("WorkoutTotals failed: %v", err)
	}
	if totals != (models.WorkoutTotals{}) {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}
