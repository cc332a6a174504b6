// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides isolated SQLite databases and a deterministic clock.
package storage

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

func setupTestDB(t *testing.T, opts ...Option) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fitness.db")
	db, err := Open(dbPath, opts...)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// tickingClock returns a clock that advances one second per call.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func workoutInput(date, typ string, duration, calories int) *models.WorkoutInput {
	return &models.WorkoutInput{
		Date:     date,
		Type:     typ,
		Duration: models.Int(duration),
		Calories: models.Int(calories),
	}
}

func mealInput(date, mealType, food string, calories int) *models.MealInput {
	return &models.MealInput{
		Date:     date,
		MealType: mealType,
		FoodName: food,
		Calories: models.Int(calories),
	}
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func goalInput(goalType string, target int, deadline *string) *models.GoalInput {
	return &models.GoalInput{
		GoalType:    goalType,
		TargetValue: models.Int(target),
		Deadline:    deadline,
	}
}
