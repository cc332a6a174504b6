// ABOUTME: Fitness goal create/list/delete operations for SQLite storage.
// ABOUTME: Deadline is optional and stored as NULL when absent.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// ListGoals returns every goal, most recently created first.
func (d *DB) ListGoals(ctx context.Context) ([]*models.Goal, error) {
	var goals []*models.Goal
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, goal_type, target_value, deadline, created_at
			FROM goals
			ORDER BY created_at DESC, id DESC
		`)
		if err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		defer rows.Close()

		goals, err = scanGoals(rows)
		return err
	})
	return goals, err
}

// CreateGoal validates and stores a new goal, returning its ID.
func (d *DB) CreateGoal(ctx context.Context, in *models.GoalInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO goals (goal_type, target_value, deadline, created_at)
			VALUES (?, ?, ?, ?)
		`, in.GoalType, *in.TargetValue, in.Deadline, d.timestamp())
		if err != nil {
			return fmt.Errorf("create goal: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create goal: %w", err)
		}
		return nil
	})
	return id, err
}

// DeleteGoal removes a goal. Deleting an unknown ID is not an error.
func (d *DB) DeleteGoal(ctx context.Context, id int64) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete goal: %w", err)
		}
		return nil
	})
}

func scanGoals(rows *sql.Rows) ([]*models.Goal, error) {
	goals := make([]*models.Goal, 0)

	for rows.Next() {
		var g models.Goal
		var deadline sql.NullString
		var createdAt string

		if err := rows.Scan(&g.ID, &g.GoalType, &g.TargetValue, &deadline, &createdAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}

		if deadline.Valid {
			g.Deadline = &deadline.String
		}
		g.CreatedAt = parseTimestamp(createdAt)
		goals = append(goals, &g)
	}

	return goals, rows.Err()
}
