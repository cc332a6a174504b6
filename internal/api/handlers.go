// ABOUTME: HTTP handlers mapping each route to one store operation.
// ABOUTME: Bad input becomes 400; any other failure becomes an opaque 500.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/harperreed/fitness/internal/models"
)

const (
	msgBadRequest = "Invalid or missing data in request"
	msgInternal   = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

var errBadBody = errors.New("malformed request body")

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// fail maps err to a status code. Internals are logged, never returned.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		s.metrics.RecordValidationFailure(ve.Op)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadRequest})
	case errors.Is(err, errBadBody):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadRequest})
	default:
		s.log.Error().Err(err).
			Str("request_id", requestIDFrom(r.Context())).
			Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadBody
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errBadBody
	}
	return id, nil
}

func (s *Server) listWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.repo.ListWorkouts(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) createWorkout(w http.ResponseWriter, r *http.Request) {
	var in models.WorkoutInput
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	id, err := s.repo.CreateWorkout(r.Context(), &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Workout added successfully"})
}

func (s *Server) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.repo.DeleteWorkout(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Workout deleted successfully"})
}

func (s *Server) listMeals(w http.ResponseWriter, r *http.Request) {
	var date *string
	if d := r.URL.Query().Get("date"); d != "" {
		date = &d
	}
	meals, err := s.repo.ListMeals(r.Context(), date)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

func (s *Server) createMeal(w http.ResponseWriter, r *http.Request) {
	var in models.MealInput
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	id, err := s.repo.CreateMeal(r.Context(), &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Meal added successfully"})
}

func (s *Server) deleteMeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.repo.DeleteMeal(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Meal deleted successfully"})
}

func (s *Server) dailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.repo.DailySummary(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) getCalorieGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.repo.GetCalorieGoal(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	// A missing goal encodes as null.
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) setCalorieGoal(w http.ResponseWriter, r *http.Request) {
	var in models.CalorieGoalInput
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.repo.SetCalorieGoal(r.Context(), &in); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Calorie goal set successfully"})
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.Summary(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.repo.ListGoals(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) createGoal(w http.ResponseWriter, r *http.Request) {
	var in models.GoalInput
	if err := decode(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	id, err := s.repo.CreateGoal(r.Context(), &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Goal added successfully"})
}

func (s *Server) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.repo.DeleteGoal(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Goal deleted successfully"})
}
