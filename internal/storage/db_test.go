// ABOUTME: Tests for database initialization and schema management.
// ABOUTME: Verifies table creation, idempotent schema, and XDG path handling.
package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestOpenCreatesTables(t *testing.T) {
	db := setupTestDB(t)

	tables := []string{"workouts", "goals", "meals", "calorie_goals"}
	for _, table := range tables {
		var count int
		err := db.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
			table).Scan(&count)
		if err != nil {
			t.Errorf("Error checking table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("Table %s does not exist", table)
		}
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.CreateWorkout(ctx, workoutInput("2024-01-01", "run", 30, 300)); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := db.EnsureSchema(ctx); err != nil {
			t.Fatalf("EnsureSchema call %d failed: %v", i, err)
		}
	}

	if n := countRows(t, db, "workouts"); n != 1 {
		t.Errorf("expected existing data to survive, got %d rows", n)
	}
}

func TestEnsureSchemaConcurrent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- db.EnsureSchema(ctx)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent EnsureSchema failed: %v", err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fitness.db")
	ctx := context.Background()

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := db.CreateGoal(ctx, goalInput("steps", 10000, nil)); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	goals, err := db.ListGoals(ctx)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Errorf("expected 1 goal after reopen, got %d", len(goals))
	}
}

func TestOpenUnavailable(t *testing.T) {
	// A regular file where the parent directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := Open(filepath.Join(blocker, "fitness.db"))
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "fitness.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
	if db.Path() != dbPath {
		t.Errorf("Path() = %s, want %s", db.Path(), dbPath)
	}
}

func TestDefaultDBPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	expected := filepath.Join(tmpDir, "fitness", "fitness_tracker.db")
	if got := DefaultDBPath(); got != expected {
		t.Errorf("DefaultDBPath() = %s, want %s", got, expected)
	}
}
