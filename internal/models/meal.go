// ABOUTME: Meal model and daily nutrition summary types.
// ABOUTME: Macro fields default to zero when not supplied.
package models

import "time"

// Meal represents a single food entry.
type Meal struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	MealType  string    `json:"meal_type" yaml:"meal_type"`
	FoodName  string    `json:"food_name" yaml:"food_name"`
	Calories  int       `json:"calories" yaml:"calories"`
	Protein   int       `json:"protein" yaml:"protein"`
	Carbs     int       `json:"carbs" yaml:"carbs"`
	Fats      int       `json:"fats" yaml:"fats"`
	Notes     string    `json:"notes" yaml:"notes"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// MealInput carries the fields accepted when logging a meal.
type MealInput struct {
	Date     string `json:"date" validate:"required"`
	MealType string `json:"meal_type" validate:"required"`
	FoodName string `json:"food_name" validate:"required"`
	Calories *int   `json:"calories" validate:"required"`
	Protein  *int   `json:"protein"`
	Carbs    *int   `json:"carbs"`
	Fats     *int   `json:"fats"`
	Notes    string `json:"notes"`
}

// NutritionTotals sums calories and macros over a set of meals.
type NutritionTotals struct {
	Calories int64 `json:"calories" yaml:"calories"`
	Protein  int64 `json:"protein" yaml:"protein"`
	Carbs    int64 `json:"carbs" yaml:"carbs"`
	Fats     int64 `json:"fats" yaml:"fats"`
}

// DailySummary is the nutrition view of a single calendar date.
type DailySummary struct {
	Meals  []*Meal         `json:"meals" yaml:"meals"`
	Totals NutritionTotals `json:"totals" yaml:"totals"`
}
