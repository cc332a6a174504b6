// ABOUTME: CLI command for lifetime workout and nutrition totals.
// ABOUTME: Net calories is consumed minus burned.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := stats.New(repo).Summary(cmd.Context())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		fmt.Printf("Workouts:           %s\n", bold.Sprint(s.TotalWorkouts))
		fmt.Printf("Total duration:     %d min\n", s.TotalDuration)
		fmt.Printf("Calories burned:    %d\n", s.TotalCaloriesBurned)
		fmt.Printf("Calories consumed:  %d\n", s.TotalCaloriesConsumed)

		net := fmt.Sprintf("%+d", s.NetCalories)
		if s.NetCalories > 0 {
			fmt.Printf("Net calories:       %s\n", color.YellowString(net))
		} else {
			fmt.Printf("Net calories:       %s\n", color.GreenString(net))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
