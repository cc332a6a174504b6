// ABOUTME: Export and import functionality for fitness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats and JSON import.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for fitness data.
type ExportData struct {
	Version      string                `json:"version" yaml:"version"`
	ExportedAt   time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool         string                `json:"tool" yaml:"tool"`
	Workouts     []*models.Workout     `json:"workouts" yaml:"workouts"`
	Meals        []*models.Meal        `json:"meals" yaml:"meals"`
	Goals        []*models.Goal        `json:"goals" yaml:"goals"`
	CalorieGoals []*models.CalorieGoal `json:"calorie_goals" yaml:"calorie_goals"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData(ctx context.Context) (*ExportData, error) {
	workouts, err := d.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	var meals []*models.Meal
	err = d.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT `+mealColumns+`
			FROM meals
			ORDER BY date DESC, created_at DESC, id DESC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		meals, err = scanMeals(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	goals, err := d.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	calorieGoals, err := d.ListCalorieGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calorie goals: %w", err)
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   d.now().UTC(),
		Tool:         "fitness",
		Workouts:     workouts,
		Meals:        meals,
		Goals:        goals,
		CalorieGoals: calorieGoals,
	}, nil
}

// ImportData imports data from an export file in a single transaction.
// Records receive new IDs; created_at is preserved when present.
// Calorie goals replace any existing goal for the same date.
func (d *DB) ImportData(ctx context.Context, data *ExportData) error {
	stamp := func(t time.Time) string {
		if t.IsZero() {
			return d.timestamp()
		}
		return formatTimestamp(t)
	}

	return d.withTx(ctx, func(tx *sql.Tx) error {
		for _, w := range data.Workouts {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO workouts (date, type, duration, calories, notes, created_at)
				VALUES (?, ?, ?, ?, ?, ?)
			`, w.Date, w.Type, w.Duration, w.Calories, w.Notes, stamp(w.CreatedAt))
			if err != nil {
				return fmt.Errorf("import workout: %w", err)
			}
		}

		for _, m := range data.Meals {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO meals (date, meal_type, food_name, calories, protein, carbs, fats, notes, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, m.Date, m.MealType, m.FoodName, m.Calories, m.Protein, m.Carbs, m.Fats, m.Notes, stamp(m.CreatedAt))
			if err != nil {
				return fmt.Errorf("import meal: %w", err)
			}
		}

		for _, g := range data.Goals {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO goals (goal_type, target_value, deadline, created_at)
				VALUES (?, ?, ?, ?)
			`, g.GoalType, g.TargetValue, g.Deadline, stamp(g.CreatedAt))
			if err != nil {
				return fmt.Errorf("import goal: %w", err)
			}
		}

		for _, cg := range data.CalorieGoals {
			if err := upsertCalorieGoal(ctx, tx, cg.Date, cg.DailyGoal, stamp(cg.CreatedAt)); err != nil {
				return fmt.Errorf("import calorie goal: %w", err)
			}
		}

		return nil
	})
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(ctx context.Context, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(ctx, &data)
}

// ExportYAML exports all data as YAML, grouped by date.
func (d *DB) ExportYAML(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string             `yaml:"version"`
		ExportedAt string             `yaml:"exported_at"`
		Tool       string             `yaml:"tool"`
		Days       map[string]yamlDay `yaml:"days"`
		Goals      []yamlGoal         `yaml:"goals"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Days:       make(map[string]yamlDay),
		Goals:      make([]yamlGoal, 0, len(data.Goals)),
	}

	day := func(date string) yamlDay { return yamlData.Days[date] }

	for _, w := range data.Workouts {
		yd := day(w.Date)
		yd.Workouts = append(yd.Workouts, yamlWorkout{
			Type:     w.Type,
			Duration: w.Duration,
			Calories: w.Calories,
			Notes:    w.Notes,
		})
		yamlData.Days[w.Date] = yd
	}

	for _, m := range data.Meals {
		yd := day(m.Date)
		yd.Meals = append(yd.Meals, yamlMeal{
			MealType: m.MealType,
			FoodName: m.FoodName,
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fats:     m.Fats,
			Notes:    m.Notes,
		})
		yamlData.Days[m.Date] = yd
	}

	for _, cg := range data.CalorieGoals {
		yd := day(cg.Date)
		yd.CalorieGoal = cg.DailyGoal
		yamlData.Days[cg.Date] = yd
	}

	for _, g := range data.Goals {
		yg := yamlGoal{Type: g.GoalType, Target: g.TargetValue}
		if g.Deadline != nil {
			yg.Deadline = *g.Deadline
		}
		yamlData.Goals = append(yamlData.Goals, yg)
	}

	return yaml.Marshal(yamlData)
}

type yamlDay struct {
	CalorieGoal int           `yaml:"calorie_goal,omitempty"`
	Workouts    []yamlWorkout `yaml:"workouts,omitempty"`
	Meals       []yamlMeal    `yaml:"meals,omitempty"`
}

type yamlWorkout struct {
	Type     string `yaml:"type"`
	Duration int    `yaml:"duration"`
	Calories int    `yaml:"calories"`
	Notes    string `yaml:"notes,omitempty"`
}

type yamlMeal struct {
	MealType string `yaml:"meal_type"`
	FoodName string `yaml:"food_name"`
	Calories int    `yaml:"calories"`
	Protein  int    `yaml:"protein,omitempty"`
	Carbs    int    `yaml:"carbs,omitempty"`
	Fats     int    `yaml:"fats,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
}

type yamlGoal struct {
	Type     string `yaml:"type"`
	Target   int    `yaml:"target"`
	Deadline string `yaml:"deadline,omitempty"`
}

// ExportMarkdown exports data as Markdown tables, one section per date.
// If since is non-empty only dates on or after it are included.
func (d *DB) ExportMarkdown(ctx context.Context, since string) (string, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return "", err
	}

	workoutsByDate := make(map[string][]*models.Workout)
	mealsByDate := make(map[string][]*models.Meal)
	dateSet := make(map[string]struct{})

	for _, w := range data.Workouts {
		if since != "" && w.Date < since {
			continue
		}
		workoutsByDate[w.Date] = append(workoutsByDate[w.Date], w)
		dateSet[w.Date] = struct{}{}
	}
	for _, m := range data.Meals {
		if since != "" && m.Date < since {
			continue
		}
		mealsByDate[m.Date] = append(mealsByDate[m.Date], m)
		dateSet[m.Date] = struct{}{}
	}

	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Fitness Export - %s\n\n", data.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	for _, date := range dates {
		sb.WriteString(fmt.Sprintf("## %s\n\n", date))

		if workouts := workoutsByDate[date]; len(workouts) > 0 {
			sb.WriteString("### Workouts\n\n")
			sb.WriteString("| Type | Duration | Calories | Notes |\n")
			sb.WriteString("|------|----------|----------|-------|\n")
			for _, w := range workouts {
				sb.WriteString(fmt.Sprintf("| %s | %d min | %d | %s |\n",
					w.Type, w.Duration, w.Calories, w.Notes))
			}
			sb.WriteString("\n")
		}

		if meals := mealsByDate[date]; len(meals) > 0 {
			sb.WriteString("### Meals\n\n")
			sb.WriteString("| Meal | Food | Calories | P/C/F | Notes |\n")
			sb.WriteString("|------|------|----------|-------|-------|\n")
			for _, m := range meals {
				sb.WriteString(fmt.Sprintf("| %s | %s | %d | %d/%d/%d | %s |\n",
					m.MealType, m.FoodName, m.Calories, m.Protein, m.Carbs, m.Fats, m.Notes))
			}
			sb.WriteString("\n")
		}
	}

	if len(data.Goals) > 0 {
		sb.WriteString("## Goals\n\n")
		sb.WriteString("| Type | Target | Deadline |\n")
		sb.WriteString("|------|--------|----------|\n")
		for _, g := range data.Goals {
			deadline := ""
			if g.Deadline != nil {
				deadline = *g.Deadline
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", g.GoalType, g.TargetValue, deadline))
		}
	}

	return sb.String(), nil
}
