// ABOUTME: Fitness goal and per-date calorie goal models.
// ABOUTME: Calorie goals are unique per date and replaced on resubmission.
package models

import "time"

// Goal is a free-form fitness target with an optional deadline.
type Goal struct {
	ID          int64     `json:"id" yaml:"id"`
	GoalType    string    `json:"goal_type" yaml:"goal_type"`
	TargetValue int       `json:"target_value" yaml:"target_value"`
	Deadline    *string   `json:"deadline" yaml:"deadline"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// GoalInput carries the fields accepted when creating a goal.
type GoalInput struct {
	GoalType    string  `json:"goal_type" validate:"required"`
	TargetValue *int    `json:"target_value" validate:"required"`
	Deadline    *string `json:"deadline"`
}

// CalorieGoal is the daily calorie target for one date.
type CalorieGoal struct {
	ID        int64     `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	DailyGoal int       `json:"daily_goal" yaml:"daily_goal"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// CalorieGoalInput carries the fields accepted when setting a calorie goal.
type CalorieGoalInput struct {
	Date      string `json:"date" validate:"required"`
	DailyGoal *int   `json:"daily_goal" validate:"required"`
}
