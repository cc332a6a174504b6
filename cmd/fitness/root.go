// ABOUTME: Root Cobra command for fitness CLI.
// ABOUTME: Loads config and manages the storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/fitness/internal/config"
	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dbPath string

	cfg    *config.Config
	logger zerolog.Logger
	repo   *storage.DB
)

var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Personal workout and nutrition tracker",
	Long: `Fitness is a CLI tool for tracking workouts, meals, and goals.

WHAT IT TRACKS:

  Workouts       type, duration (minutes), calories burned
  Meals          meal type, food, calories, protein/carbs/fats (grams)
  Goals          freeform targets with optional deadlines
  Calorie goals  one daily calorie target per date

QUICK START:

  $ fitness workout add run -d 30 -c 300        # Log a run
  $ fitness meal add oatmeal -t breakfast -c 350 # Log a meal
  $ fitness meal daily                          # Today's meals and totals
  $ fitness calorie-goal set 2000               # Today's calorie target
  $ fitness stats                               # Lifetime totals

HTTP API:

  Run 'fitness serve' to expose the JSON API on 127.0.0.1:5000.

MCP INTEGRATION:

  Run 'fitness mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitness": { "command": "fitness", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/fitness/fitness_tracker.db.
  Override with --db or data_dir in ~/.config/fitness/config.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = logging.New(cfg.GetLogLevel(), cfg.GetLogFormat(), os.Stderr)

		path := cfg.DBPath()
		if dbPath != "" {
			path = config.ExpandPath(dbPath)
		}

		// A failed RunE skips PersistentPostRunE.
		if repo != nil {
			_ = repo.Close()
		}

		repo, err = storage.Open(path, storage.WithLogger(logging.Component(logger, "storage")))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.local/share/fitness/fitness_tracker.db)")
}

// today returns the local calendar date in YYYY-MM-DD form.
func today() string {
	return time.Now().Format("2006-01-02")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

// flagInt returns the flag value only if the user set it.
func flagInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
