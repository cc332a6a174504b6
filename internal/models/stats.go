// ABOUTME: Lifetime statistics across workouts and meals.
package models

// Stats summarizes all recorded activity.
type Stats struct {
	TotalWorkouts         int64 `json:"total_workouts" yaml:"total_workouts"`
	TotalCaloriesBurned   int64 `json:"total_calories_burned" yaml:"total_calories_burned"`
	TotalDuration         int64 `json:"total_duration" yaml:"total_duration"`
	TotalCaloriesConsumed int64 `json:"total_calories_consumed" yaml:"total_calories_consumed"`
	NetCalories           int64 `json:"net_calories" yaml:"net_calories"`
}
