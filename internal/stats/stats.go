// ABOUTME: Lifetime stats composed from workout and meal totals.
// ABOUTME: Holds no state; every Summary call reads fresh totals from its source.
package stats

import (
	"context"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// Source provides the totals the aggregator composes.
type Source interface {
	WorkoutTotals(ctx context.Context) (models.WorkoutTotals, error)
	MealTotals(ctx context.Context) (models.NutritionTotals, error)
}

// Aggregator computes summary figures over workouts and meals.
type Aggregator struct {
	src Source
}

// New returns an Aggregator reading from src.
func New(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// Summary returns lifetime workout and nutrition figures. Net calories is
// consumed minus burned and may be negative.
func (a *Aggregator) Summary(ctx context.Context) (*models.Stats, error) {
	workouts, err := a.src.WorkoutTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	meals, err := a.src.MealTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return &models.Stats{
		TotalWorkouts:         workouts.Count,
		TotalCaloriesBurned:   workouts.Calories,
		TotalDuration:         workouts.Duration,
		TotalCaloriesConsumed: meals.Calories,
		NetCalories:           meals.Calories - workouts.Calories,
	}, nil
}
