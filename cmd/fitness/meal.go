// ABOUTME: CLI commands for managing meals.
// ABOUTME: Supports add, list, delete, and daily summary subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/spf13/cobra"
)

var (
	mealDate     string
	mealType     string
	mealCalories int
	mealProtein  int
	mealCarbs    int
	mealFats     int
	mealNotes    string

	mealListDate string
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Manage meals",
	Long: `Track meals with calories and macronutrients.

COMMANDS:

  add      Log a meal
  list     List meals for a date, or the 50 most recent
  delete   Delete a meal by ID
  daily    Show a day's meals with totals`,
}

var mealAddCmd = &cobra.Command{
	Use:   "add <food>",
	Short: "Add a meal",
	Long: `Log a meal. Meal type and calories are required; macros default to 0.

Examples:
  fitness meal add oatmeal -t breakfast -c 350 --protein 12 --carbs 60 --fats 6
  fitness meal add "chicken salad" -t lunch -c 520
  fitness meal add apple -t snack -c 95 --date 2024-06-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &models.MealInput{
			Date:     mealDate,
			MealType: mealType,
			FoodName: args[0],
			Calories: flagInt(cmd, "calories", mealCalories),
			Protein:  flagInt(cmd, "protein", mealProtein),
			Carbs:    flagInt(cmd, "carbs", mealCarbs),
			Fats:     flagInt(cmd, "fats", mealFats),
			Notes:    mealNotes,
		}
		if in.Date == "" {
			in.Date = today()
		}

		id, err := repo.CreateMeal(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to add meal: %w", err)
		}

		color.Green("✓ Added %s: %s", in.MealType, in.FoodName)
		fmt.Printf("  ID: %d\n", id)
		fmt.Printf("  %s  %d cal\n", in.Date, *in.Calories)

		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		var date *string
		if mealListDate != "" {
			date = &mealListDate
		}

		meals, err := repo.ListMeals(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		if len(meals) == 0 {
			fmt.Println("No meals found.")
			return nil
		}

		printMeals(meals)
		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a meal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteMeal(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Yellow("✗ Deleted meal %d", id)
		return nil
	},
}

var mealDailyCmd = &cobra.Command{
	Use:   "daily [date]",
	Short: "Show a day's meals and totals",
	Long: `Show the meals logged on a date in the order they were added, with
calorie and macro totals. The date defaults to today.

Examples:
  fitness meal daily
  fitness meal daily 2024-06-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := today()
		if len(args) == 1 {
			date = args[0]
		}

		summary, err := repo.DailySummary(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to get daily summary: %w", err)
		}

		goal, err := repo.GetCalorieGoal(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to get calorie goal: %w", err)
		}

		color.New(color.Bold).Printf("%s\n", date)
		if len(summary.Meals) == 0 {
			fmt.Println("No meals logged.")
		} else {
			printMeals(summary.Meals)
		}

		t := summary.Totals
		fmt.Printf("\nTotal: %d cal  P %dg  C %dg  F %dg\n", t.Calories, t.Protein, t.Carbs, t.Fats)
		if goal != nil {
			remaining := int64(goal.DailyGoal) - t.Calories
			if remaining >= 0 {
				color.Green("Goal: %d cal (%d remaining)", goal.DailyGoal, remaining)
			} else {
				color.Red("Goal: %d cal (%d over)", goal.DailyGoal, -remaining)
			}
		}

		return nil
	},
}

func printMeals(meals []*models.Meal) {
	faint := color.New(color.Faint)
	for _, m := range meals {
		fmt.Printf("%s %s %s %s %5d cal  %s\n",
			faint.Sprint(padRight(fmt.Sprint(m.ID), 5)),
			faint.Sprint(m.Date),
			padRight(m.MealType, 10),
			padRight(truncate(m.FoodName, 24), 24),
			m.Calories,
			faint.Sprintf("P%d C%d F%d", m.Protein, m.Carbs, m.Fats))
	}
}

func init() {
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "meal date YYYY-MM-DD (default: today)")
	mealAddCmd.Flags().StringVarP(&mealType, "type", "t", "", "meal type (breakfast, lunch, dinner, snack)")
	mealAddCmd.Flags().IntVarP(&mealCalories, "calories", "c", 0, "calories")
	mealAddCmd.Flags().IntVar(&mealProtein, "protein", 0, "protein in grams")
	mealAddCmd.Flags().IntVar(&mealCarbs, "carbs", 0, "carbohydrates in grams")
	mealAddCmd.Flags().IntVar(&mealFats, "fats", 0, "fats in grams")
	mealAddCmd.Flags().StringVarP(&mealNotes, "notes", "n", "", "meal notes")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "only meals on this date (YYYY-MM-DD)")

	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	mealCmd.AddCommand(mealDailyCmd)
	rootCmd.AddCommand(mealCmd)
}
