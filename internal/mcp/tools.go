// ABOUTME: MCP tool implementations for fitness tracking.
// ABOUTME: Exposes workout, meal, goal, calorie goal, and stats operations.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// Workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List all workouts, newest date first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Log a workout session with duration and calories burned",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID",
	}, s.handleDeleteWorkout)

	// Meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List meals for a date, or the 50 most recent meals",
	}, s.handleListMeals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_meal",
		Description: "Log a meal with calories and optional macronutrients",
	}, s.handleAddMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a meal by ID",
	}, s.handleDeleteMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_summary",
		Description: "Get a day's meals with calorie and macro totals",
	}, s.handleDailySummary)

	// Calorie goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_calorie_goal",
		Description: "Get the daily calorie target for a date",
	}, s.handleGetCalorieGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_calorie_goal",
		Description: "Set the daily calorie target for a date, replacing any existing target",
	}, s.handleSetCalorieGoal)

	// Goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List fitness goals, newest first",
	}, s.handleListGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a fitness goal with a target value and optional deadline",
	}, s.handleAddGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_goal",
		Description: "Delete a goal by ID",
	}, s.handleDeleteGoal)

	// Stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Lifetime totals for workouts, calories burned and consumed, and net calories",
	}, s.handleGetStats)
}

// Tool input/output types

type emptyInput struct{}

type idInput struct {
	ID int64 `json:"id" jsonschema:"Record ID"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type listMealsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Only meals on this date (YYYY-MM-DD); omit for the 50 most recent"`
}

type addWorkoutInput struct {
	Date     string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
	Type     string `json:"type" jsonschema:"Kind of workout (run, lift, cycle, swim, etc.)"`
	Duration int    `json:"duration" jsonschema:"Duration in minutes"`
	Calories int    `json:"calories" jsonschema:"Calories burned"`
	Notes    string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type addMealInput struct {
	Date     string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
	MealType string `json:"meal_type" jsonschema:"Meal category (breakfast, lunch, dinner, snack)"`
	FoodName string `json:"food_name" jsonschema:"What was eaten"`
	Calories int    `json:"calories" jsonschema:"Calories consumed"`
	Protein  *int   `json:"protein,omitempty" jsonschema:"Protein in grams"`
	Carbs    *int   `json:"carbs,omitempty" jsonschema:"Carbohydrates in grams"`
	Fats     *int   `json:"fats,omitempty" jsonschema:"Fats in grams"`
	Notes    string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type setCalorieGoalInput struct {
	Date      string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
	DailyGoal int    `json:"daily_goal" jsonschema:"Daily calorie target"`
}

type addGoalInput struct {
	GoalType    string `json:"goal_type" jsonschema:"Kind of goal (weight, steps, workouts_per_week, etc.)"`
	TargetValue int    `json:"target_value" jsonschema:"Target value"`
	Deadline    string `json:"deadline,omitempty" jsonschema:"Optional deadline (YYYY-MM-DD)"`
}

type createdOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found.", "workouts": workouts}, nil
	}

	return nil, map[string]interface{}{"workouts": workouts}, nil
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, createdOutput, error) {
	id, err := s.repo.CreateWorkout(ctx, &models.WorkoutInput{
		Date:     s.dateOrToday(input.Date),
		Type:     input.Type,
		Duration: models.Int(input.Duration),
		Calories: models.Int(input.Calories),
		Notes:    input.Notes,
	})
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to add workout: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		Message: fmt.Sprintf("Added %s workout: %d min, %d cal (ID: %d)", input.Type, input.Duration, input.Calories, id),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %d", input.ID),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, any, error) {
	var date *string
	if input.Date != "" {
		date = &input.Date
	}

	meals, err := s.repo.ListMeals(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meals: %w", err)
	}

	if len(meals) == 0 {
		return nil, map[string]interface{}{"message": "No meals found.", "meals": meals}, nil
	}

	return nil, map[string]interface{}{"meals": meals}, nil
}

func (s *Server) handleAddMeal(ctx context.Context, req *mcp.CallToolRequest, input addMealInput) (*mcp.CallToolResult, createdOutput, error) {
	id, err := s.repo.CreateMeal(ctx, &models.MealInput{
		Date:     s.dateOrToday(input.Date),
		MealType: input.MealType,
		FoodName: input.FoodName,
		Calories: models.Int(input.Calories),
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
		Notes:    input.Notes,
	})
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to add meal: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		Message: fmt.Sprintf("Added %s: %s, %d cal (ID: %d)", input.MealType, input.FoodName, input.Calories, id),
	}, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMeal(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted meal: %d", input.ID),
	}, nil
}

func (s *Server) handleDailySummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date := s.dateOrToday(input.Date)

	summary, err := s.repo.DailySummary(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return nil, map[string]interface{}{
		"date":   date,
		"meals":  summary.Meals,
		"totals": summary.Totals,
	}, nil
}

func (s *Server) handleGetCalorieGoal(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date := s.dateOrToday(input.Date)

	goal, err := s.repo.GetCalorieGoal(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get calorie goal: %w", err)
	}

	if goal == nil {
		return nil, map[string]interface{}{
			"date":    date,
			"message": fmt.Sprintf("No calorie goal set for %s.", date),
		}, nil
	}

	return nil, goal, nil
}

func (s *Server) handleSetCalorieGoal(ctx context.Context, req *mcp.CallToolRequest, input setCalorieGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := s.dateOrToday(input.Date)

	if err := s.repo.SetCalorieGoal(ctx, &models.CalorieGoalInput{
		Date:      date,
		DailyGoal: models.Int(input.DailyGoal),
	}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set calorie goal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Calorie goal for %s set to %d", date, input.DailyGoal),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found.", "goals": goals}, nil
	}

	return nil, map[string]interface{}{"goals": goals}, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, createdOutput, error) {
	var deadline *string
	if input.Deadline != "" {
		deadline = &input.Deadline
	}

	id, err := s.repo.CreateGoal(ctx, &models.GoalInput{
		GoalType:    input.GoalType,
		TargetValue: models.Int(input.TargetValue),
		Deadline:    deadline,
	})
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to add goal: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		Message: fmt.Sprintf("Added %s goal: %d (ID: %d)", input.GoalType, input.TargetValue, id),
	}, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteGoal(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete goal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted goal: %d", input.ID),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, *models.Stats, error) {
	summary, err := s.stats.Summary(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("stats failed")
		return nil, nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return nil, summary, nil
}
