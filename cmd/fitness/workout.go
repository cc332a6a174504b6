// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutDate     string
	workoutDuration int
	workoutCalories int
	workoutNotes    string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Track workout sessions.

Each workout records a date, a freeform type, its duration in minutes, and
the calories burned. Use whatever type names make sense for you:
  run, lift, swim, cycle, yoga, hiit, walk, climb, etc.

COMMANDS:

  add      Log a workout
  list     List all workouts, newest first
  delete   Delete a workout by ID`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Add a workout",
	Long: `Log a workout. Duration and calories are required.

Examples:
  fitness workout add run -d 45 -c 420
  fitness workout add lift -d 60 -c 300 --notes "Leg day"
  fitness workout add swim -d 30 -c 250 --date 2024-06-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &models.WorkoutInput{
			Date:     workoutDate,
			Type:     args[0],
			Duration: flagInt(cmd, "duration", workoutDuration),
			Calories: flagInt(cmd, "calories", workoutCalories),
			Notes:    workoutNotes,
		}
		if in.Date == "" {
			in.Date = today()
		}

		id, err := repo.CreateWorkout(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		color.Green("✓ Added %s workout", in.Type)
		fmt.Printf("  ID: %d\n", id)
		fmt.Printf("  %s  %d min  %d cal\n", in.Date, *in.Duration, *in.Calories)

		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.ListWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			notes := ""
			if w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(w.Notes, 30))
			}
			fmt.Printf("%s %s %s %4d min %5d cal%s\n",
				faint.Sprint(padRight(fmt.Sprint(w.ID), 5)),
				faint.Sprint(w.Date),
				padRight(w.Type, 12),
				w.Duration,
				w.Calories,
				notes)
		}

		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteWorkout(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted workout %d", id)
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "workout date YYYY-MM-DD (default: today)")
	workoutAddCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "duration in minutes")
	workoutAddCmd.Flags().IntVarP(&workoutCalories, "calories", "c", 0, "calories burned")
	workoutAddCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "workout notes")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
