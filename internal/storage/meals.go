// ABOUTME: Meal create/list/delete operations and daily nutrition summaries.
// ABOUTME: Recent listing is newest-first and capped; date listing is oldest-first.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// RecentMealsLimit caps the unfiltered meal listing.
const RecentMealsLimit = 50

const mealColumns = `id, date, meal_type, food_name, calories, protein, carbs, fats, notes, created_at`

// ListMeals returns meals. With a nil date it returns the most recent
// RecentMealsLimit meals ordered by date then creation time, newest first.
// With a date it returns every meal on that date in the order they were
// logged.
func (d *DB) ListMeals(ctx context.Context, date *string) ([]*models.Meal, error) {
	var meals []*models.Meal
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if date != nil {
			meals, err = mealsOnDate(ctx, tx, *date)
			return err
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT `+mealColumns+`
			FROM meals
			ORDER BY date DESC, created_at DESC, id DESC
			LIMIT ?
		`, RecentMealsLimit)
		if err != nil {
			return fmt.Errorf("list meals: %w", err)
		}
		defer rows.Close()

		meals, err = scanMeals(rows)
		return err
	})
	return meals, err
}

// CreateMeal validates and stores a new meal, returning its ID.
func (d *DB) CreateMeal(ctx context.Context, in *models.MealInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO meals (date, meal_type, food_name, calories, protein, carbs, fats, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			in.Date,
			in.MealType,
			in.FoodName,
			*in.Calories,
			intOrZero(in.Protein),
			intOrZero(in.Carbs),
			intOrZero(in.Fats),
			in.Notes,
			d.timestamp(),
		)
		if err != nil {
			return fmt.Errorf("create meal: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create meal: %w", err)
		}
		return nil
	})
	return id, err
}

// DeleteMeal removes a meal. Deleting an unknown ID is not an error.
func (d *DB) DeleteMeal(ctx context.Context, id int64) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM meals WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete meal: %w", err)
		}
		return nil
	})
}

// DailySummary returns the meals logged on date, oldest first, together
// with their summed calories and macros. Rows and totals are read in the
// same transaction.
func (d *DB) DailySummary(ctx context.Context, date string) (*models.DailySummary, error) {
	summary := &models.DailySummary{}
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		meals, err := mealsOnDate(ctx, tx, date)
		if err != nil {
			return err
		}
		summary.Meals = meals

		err = tx.QueryRowContext(ctx, `
			SELECT
				COALESCE(SUM(calories), 0),
				COALESCE(SUM(protein), 0),
				COALESCE(SUM(carbs), 0),
				COALESCE(SUM(fats), 0)
			FROM meals
			WHERE date = ?
		`, date).Scan(
			&summary.Totals.Calories,
			&summary.Totals.Protein,
			&summary.Totals.Carbs,
			&summary.Totals.Fats,
		)
		if err != nil {
			return fmt.Errorf("daily totals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// MealTotals sums calories and macros across every meal on every date.
func (d *DB) MealTotals(ctx context.Context) (models.NutritionTotals, error) {
	var totals models.NutritionTotals
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT
				COALESCE(SUM(calories), 0),
				COALESCE(SUM(protein), 0),
				COALESCE(SUM(carbs), 0),
				COALESCE(SUM(fats), 0)
			FROM meals
		`).Scan(&totals.Calories, &totals.Protein, &totals.Carbs, &totals.Fats)
		if err != nil {
			return fmt.Errorf("meal totals: %w", err)
		}
		return nil
	})
	return totals, err
}

func mealsOnDate(ctx context.Context, tx *sql.Tx, date string) ([]*models.Meal, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT `+mealColumns+`
		FROM meals
		WHERE date = ?
		ORDER BY created_at ASC, id ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("list meals for %s: %w", date, err)
	}
	defer rows.Close()

	return scanMeals(rows)
}

// scanMeals scans multiple rows into a slice of Meals.
func scanMeals(rows *sql.Rows) ([]*models.Meal, error) {
	meals := make([]*models.Meal, 0)

	for rows.Next() {
		var m models.Meal
		var protein, carbs, fats sql.NullInt64
		var notes sql.NullString
		var createdAt string

		err := rows.Scan(&m.ID, &m.Date, &m.MealType, &m.FoodName, &m.Calories,
			&protein, &carbs, &fats, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}

		m.Protein = int(protein.Int64)
		m.Carbs = int(carbs.Int64)
		m.Fats = int(fats.Int64)
		m.Notes = notes.String
		m.CreatedAt = parseTimestamp(createdAt)
		meals = append(meals, &m)
	}

	return meals, rows.Err()
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
