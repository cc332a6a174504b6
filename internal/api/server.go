// ABOUTME: HTTP API server exposing the fitness store as JSON endpoints.
// ABOUTME: Builds the gorilla/mux router and runs it with graceful shutdown.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/harperreed/fitness/internal/metrics"
	"github.com/harperreed/fitness/internal/stats"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Logger         zerolog.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

// Server translates HTTP requests into store operations.
type Server struct {
	repo    storage.Repository
	stats   *stats.Aggregator
	log     zerolog.Logger
	metrics *metrics.Metrics
	origins []string
}

// NewServer creates an API server backed by repo.
func NewServer(repo storage.Repository, opts Options) *Server {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New(false)
	}
	return &Server{
		repo:    repo,
		stats:   stats.New(repo),
		log:     opts.Logger.With().Str("component", "api").Logger(),
		metrics: m,
		origins: origins,
	}
}

// Handler returns the complete HTTP handler including CORS.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestID)
	r.Use(s.observe)

	api := r.PathPrefix("/api").Subrouter()

	// Workouts
	api.HandleFunc("/workouts", s.listWorkouts).Methods(http.MethodGet)
	api.HandleFunc("/workouts", s.createWorkout).Methods(http.MethodPost)
	api.HandleFunc("/workouts/{id:[0-9]+}", s.deleteWorkout).Methods(http.MethodDelete)

	// Meals
	api.HandleFunc("/meals", s.listMeals).Methods(http.MethodGet)
	api.HandleFunc("/meals", s.createMeal).Methods(http.MethodPost)
	api.HandleFunc("/meals/{id:[0-9]+}", s.deleteMeal).Methods(http.MethodDelete)
	api.HandleFunc("/meals/daily/{date}", s.dailySummary).Methods(http.MethodGet)

	// Calorie goals
	api.HandleFunc("/calorie-goals/{date}", s.getCalorieGoal).Methods(http.MethodGet)
	api.HandleFunc("/calorie-goals", s.setCalorieGoal).Methods(http.MethodPost)

	// Stats
	api.HandleFunc("/stats", s.getStats).Methods(http.MethodGet)

	// Goals
	api.HandleFunc("/goals", s.listGoals).Methods(http.MethodGet)
	api.HandleFunc("/goals", s.createGoal).Methods(http.MethodPost)
	api.HandleFunc("/goals/{id:[0-9]+}", s.deleteGoal).Methods(http.MethodDelete)

	if s.metrics.Enabled() {
		r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		handlers.ExposedHeaders([]string{"X-Request-ID"}),
	)
	return cors(r)
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
