// ABOUTME: CLI commands for daily calorie targets.
// ABOUTME: One target per date; setting again replaces it.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/spf13/cobra"
)

var calorieGoalDate string

var calorieGoalCmd = &cobra.Command{
	Use:     "calorie-goal",
	Aliases: []string{"cg"},
	Short:   "Manage daily calorie targets",
}

var calorieGoalGetCmd = &cobra.Command{
	Use:   "get [date]",
	Short: "Show the calorie target for a date (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := today()
		if len(args) == 1 {
			date = args[0]
		}

		goal, err := repo.GetCalorieGoal(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to get calorie goal: %w", err)
		}

		if goal == nil {
			fmt.Printf("No calorie goal set for %s.\n", date)
			return nil
		}

		fmt.Printf("%s  %d cal\n", goal.Date, goal.DailyGoal)
		return nil
	},
}

var calorieGoalSetCmd = &cobra.Command{
	Use:   "set <calories>",
	Short: "Set the calorie target for a date (default: today)",
	Long: `Set the daily calorie target. Any existing target for the date is replaced.

Examples:
  fitness calorie-goal set 2000
  fitness calorie-goal set 2200 --date 2024-06-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[0])
		}

		date := calorieGoalDate
		if date == "" {
			date = today()
		}

		if err := repo.SetCalorieGoal(cmd.Context(), &models.CalorieGoalInput{
			Date:      date,
			DailyGoal: models.Int(calories),
		}); err != nil {
			return fmt.Errorf("failed to set calorie goal: %w", err)
		}

		color.Green("✓ Calorie goal for %s set to %d", date, calories)
		return nil
	},
}

func init() {
	calorieGoalSetCmd.Flags().StringVar(&calorieGoalDate, "date", "", "target date YYYY-MM-DD (default: today)")

	calorieGoalCmd.AddCommand(calorieGoalGetCmd)
	calorieGoalCmd.AddCommand(calorieGoalSetCmd)
	rootCmd.AddCommand(calorieGoalCmd)
}
