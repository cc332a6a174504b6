// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for workouts, goals, meals, and calorie_goals.
package storage

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS workouts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	type TEXT NOT NULL,
	duration INTEGER NOT NULL,
	calories INTEGER NOT NULL,
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS goals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	goal_type TEXT NOT NULL,
	target_value INTEGER NOT NULL,
	deadline TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS meals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	meal_type TEXT NOT NULL,
	food_name TEXT NOT NULL,
	calories INTEGER NOT NULL,
	protein INTEGER DEFAULT 0,
	carbs INTEGER DEFAULT 0,
	fats INTEGER DEFAULT 0,
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS calorie_goals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL UNIQUE,
	daily_goal INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_workouts_date_created ON workouts(date DESC, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_meals_date_created ON meals(date, created_at);
CREATE INDEX IF NOT EXISTS idx_goals_created ON goals(created_at DESC);
`

// EnsureSchema creates any missing tables and indexes. Existing
// structures are left untouched, so it is safe to call on every start and
// from several goroutines or processes at once.
func (d *DB) EnsureSchema(ctx context.Context) (err error) {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	// IMMEDIATE takes the write lock up front and waits on busy_timeout.
	if _, err = conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_, _ = conn.ExecContext(context.Background(), "ROLLBACK")
		}
	}()

	if _, err = conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err = conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}

	d.log.Debug().Msg("schema ensured")
	return nil
}
