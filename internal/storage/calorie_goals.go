// ABOUTME: Per-date calorie goal lookup and upsert.
// ABOUTME: The UNIQUE(date) constraint backs an atomic INSERT OR REPLACE.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// GetCalorieGoal returns the calorie goal for date, or nil if none is set.
func (d *DB) GetCalorieGoal(ctx context.Context, date string) (*models.CalorieGoal, error) {
	var goal *models.CalorieGoal
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var g models.CalorieGoal
		var createdAt string

		err := tx.QueryRowContext(ctx, `
			SELECT id, date, daily_goal, created_at
			FROM calorie_goals
			WHERE date = ?
		`, date).Scan(&g.ID, &g.Date, &g.DailyGoal, &createdAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get calorie goal: %w", err)
		}

		g.CreatedAt = parseTimestamp(createdAt)
		goal = &g
		return nil
	})
	return goal, err
}

// SetCalorieGoal stores the goal for a date, replacing any existing row
// for that date outright. The replacement gets a fresh ID and created_at.
func (d *DB) SetCalorieGoal(ctx context.Context, in *models.CalorieGoalInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	return d.withTx(ctx, func(tx *sql.Tx) error {
		return upsertCalorieGoal(ctx, tx, in.Date, *in.DailyGoal, d.timestamp())
	})
}

// ListCalorieGoals returns every calorie goal, latest date first.
func (d *DB) ListCalorieGoals(ctx context.Context) ([]*models.CalorieGoal, error) {
	goals := make([]*models.CalorieGoal, 0)
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, date, daily_goal, created_at
			FROM calorie_goals
			ORDER BY date DESC
		`)
		if err != nil {
			return fmt.Errorf("list calorie goals: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var g models.CalorieGoal
			var createdAt string
			if err := rows.Scan(&g.ID, &g.Date, &g.DailyGoal, &createdAt); err != nil {
				return fmt.Errorf("scan calorie goal: %w", err)
			}
			g.CreatedAt = parseTimestamp(createdAt)
			goals = append(goals, &g)
		}
		return rows.Err()
	})
	return goals, err
}

func upsertCalorieGoal(ctx context.Context, tx *sql.Tx, date string, dailyGoal int, createdAt string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO calorie_goals (date, daily_goal, created_at)
		VALUES (?, ?, ?)
	`, date, dailyGoal, createdAt)
	if err != nil {
		return fmt.Errorf("set calorie goal: %w", err)
	}
	return nil
}
