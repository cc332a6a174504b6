// ABOUTME: CLI command for running the HTTP JSON API.
// ABOUTME: Serves until SIGINT/SIGTERM, then shuts down gracefully.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitness/internal/api"
	"github.com/harperreed/fitness/internal/metrics"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the JSON HTTP API.

ROUTES:

  GET    /api/workouts              List workouts
  POST   /api/workouts              Add a workout
  DELETE /api/workouts/{id}         Delete a workout
  GET    /api/meals?date=           List meals (by date or 50 most recent)
  POST   /api/meals                 Add a meal
  DELETE /api/meals/{id}            Delete a meal
  GET    /api/meals/daily/{date}    Meals and totals for a date
  GET    /api/calorie-goals/{date}  Calorie goal for a date (or null)
  POST   /api/calorie-goals         Set a calorie goal
  GET    /api/stats                 Lifetime totals
  GET    /api/goals                 List goals
  POST   /api/goals                 Add a goal
  DELETE /api/goals/{id}            Delete a goal
  GET    /metrics                   Prometheus metrics (if enabled)

The listen address defaults to 127.0.0.1:5000 and can be set with --addr,
listen_addr in the config file, or FITNESS_LISTEN_ADDR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.GetListenAddr()
		}

		srv := api.NewServer(repo, api.Options{
			Logger:         logger,
			Metrics:        metrics.New(cfg.GetMetricsEnabled()),
			AllowedOrigins: cfg.GetAllowedOrigins(),
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: 127.0.0.1:5000)")
	rootCmd.AddCommand(serveCmd)
}
