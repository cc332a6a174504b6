// ABOUTME: Workout create/list/delete operations for SQLite storage.
// ABOUTME: Also provides lifetime workout totals for stats aggregation.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

const workoutColumns = `id, date, type, duration, calories, notes, created_at`

// ListWorkouts returns every workout, newest date first and, within a
// date, most recently created first.
func (d *DB) ListWorkouts(ctx context.Context) ([]*models.Workout, error) {
	var workouts []*models.Workout
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT `+workoutColumns+`
			FROM workouts
			ORDER BY date DESC, created_at DESC, id DESC
		`)
		if err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}
		defer rows.Close()

		workouts, err = scanWorkouts(rows)
		return err
	})
	return workouts, err
}

// CreateWorkout validates and stores a new workout, returning its ID.
func (d *DB) CreateWorkout(ctx context.Context, in *models.WorkoutInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO workouts (date, type, duration, calories, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			in.Date,
			in.Type,
			*in.Duration,
			*in.Calories,
			in.Notes,
			d.timestamp(),
		)
		if err != nil {
			return fmt.Errorf("create workout: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create workout: %w", err)
		}
		return nil
	})
	return id, err
}

// DeleteWorkout removes a workout. Deleting an unknown ID is not an error.
func (d *DB) DeleteWorkout(ctx context.Context, id int64) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		return nil
	})
}

// WorkoutTotals returns the workout count and summed calories and duration.
func (d *DB) WorkoutTotals(ctx context.Context) (models.WorkoutTotals, error) {
	var totals models.WorkoutTotals
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT COUNT(*), COALESCE(SUM(calories), 0), COALESCE(SUM(duration), 0)
			FROM workouts
		`).Scan(&totals.Count, &totals.Calories, &totals.Duration)
		if err != nil {
			return fmt.Errorf("workout totals: %w", err)
		}
		return nil
	})
	return totals, err
}

// scanWorkouts scans multiple rows into a slice of Workouts.
func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	workouts := make([]*models.Workout, 0)

	for rows.Next() {
		var w models.Workout
		var notes sql.NullString
		var createdAt string

		err := rows.Scan(&w.ID, &w.Date, &w.Type, &w.Duration, &w.Calories, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}

		w.Notes = notes.String
		w.CreatedAt = parseTimestamp(createdAt)
		workouts = append(workouts, &w)
	}

	return workouts, rows.Err()
}
