// ABOUTME: CLI commands for managing fitness goals.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/spf13/cobra"
)

var goalDeadline string

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage fitness goals",
	Long: `Track freeform fitness goals such as a target weight or weekly workouts.

COMMANDS:

  add      Create a goal
  list     List goals, newest first
  delete   Delete a goal by ID`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <type> <target>",
	Short: "Add a goal",
	Long: `Create a goal with an integer target and an optional deadline.

Examples:
  fitness goal add weight 75 --deadline 2024-12-31
  fitness goal add workouts_per_week 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid target: %s", args[1])
		}

		in := &models.GoalInput{
			GoalType:    args[0],
			TargetValue: models.Int(target),
		}
		if goalDeadline != "" {
			in.Deadline = &goalDeadline
		}

		id, err := repo.CreateGoal(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to add goal: %w", err)
		}

		color.Green("✓ Added %s goal", in.GoalType)
		fmt.Printf("  ID: %d\n", id)
		fmt.Printf("  Target: %d\n", target)
		if in.Deadline != nil {
			fmt.Printf("  Deadline: %s\n", *in.Deadline)
		}

		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.ListGoals(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, g := range goals {
			deadline := "no deadline"
			if g.Deadline != nil {
				deadline = "by " + *g.Deadline
			}
			fmt.Printf("%s %s %8d  %s\n",
				faint.Sprint(padRight(fmt.Sprint(g.ID), 5)),
				padRight(g.GoalType, 20),
				g.TargetValue,
				faint.Sprint(deadline))
		}

		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteGoal(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Yellow("✗ Deleted goal %d", id)
		return nil
	},
}

func init() {
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "goal deadline (YYYY-MM-DD)")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}
