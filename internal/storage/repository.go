// ABOUTME: Repository interface for fitness data storage.
// ABOUTME: Defines the create/list/delete and aggregate query contract.
package storage

import (
	"context"

	"github.com/harperreed/fitness/internal/models"
)

// Repository defines the storage interface for fitness data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Workout operations
	ListWorkouts(ctx context.Context) ([]*models.Workout, error)
	CreateWorkout(ctx context.Context, in *models.WorkoutInput) (int64, error)
	DeleteWorkout(ctx context.Context, id int64) error
	WorkoutTotals(ctx context.Context) (models.WorkoutTotals, error)

	// Meal operations
	ListMeals(ctx context.Context, date *string) ([]*models.Meal, error)
	CreateMeal(ctx context.Context, in *models.MealInput) (int64, error)
	DeleteMeal(ctx context.Context, id int64) error
	DailySummary(ctx context.Context, date string) (*models.DailySummary, error)
	MealTotals(ctx context.Context) (models.NutritionTotals, error)

	// Goal operations
	ListGoals(ctx context.Context) ([]*models.Goal, error)
	CreateGoal(ctx context.Context, in *models.GoalInput) (int64, error)
	DeleteGoal(ctx context.Context, id int64) error

	// Calorie goal operations
	GetCalorieGoal(ctx context.Context, date string) (*models.CalorieGoal, error)
	SetCalorieGoal(ctx context.Context, in *models.CalorieGoalInput) error
	ListCalorieGoals(ctx context.Context) ([]*models.CalorieGoal, error)

	// Export/Import
	GetAllData(ctx context.Context) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) error

	// Lifecycle
	Close() error
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)
