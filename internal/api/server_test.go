// ABOUTME: Tests for the HTTP API routes and middleware.
// ABOUTME: Drives the router with httptest against a temp SQLite store.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/harperreed/fitness/internal/metrics"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db      *storage.DB
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "fitness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv := NewServer(db, Options{Logger: zerolog.Nop(), Metrics: metrics.New(true)})
	return &testEnv{db: db, handler: srv.Handler()}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func TestWorkoutRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/workouts",
		`{"date":"2024-05-01","type":"run","duration":30,"calories":300}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &created)
	assert.Equal(t, "Workout added successfully", created.Message)
	assert.NotZero(t, created.ID)

	rec = env.do(t, http.MethodGet, "/api/workouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var workouts []models.Workout
	decodeBody(t, rec, &workouts)
	require.Len(t, workouts, 1)
	assert.Equal(t, "run", workouts[0].Type)
	assert.Equal(t, "", workouts[0].Notes)

	rec = env.do(t, http.MethodDelete, "/api/workouts/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Workout deleted successfully"}`, rec.Body.String())

	// Deleting again still succeeds.
	rec = env.do(t, http.MethodDelete, "/api/workouts/"+itoa(created.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/workouts", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"workout missing calories", "/api/workouts", `{"date":"2024-05-01","type":"run","duration":30}`},
		{"workout malformed json", "/api/workouts", `{"date":`},
		{"workout wrong type", "/api/workouts", `{"date":"2024-05-01","type":"run","duration":"long","calories":1}`},
		{"meal missing food", "/api/meals", `{"date":"2024-05-01","meal_type":"lunch","calories":500}`},
		{"goal missing target", "/api/goals", `{"goal_type":"weight"}`},
		{"calorie goal missing date", "/api/calorie-goals", `{"daily_goal":2000}`},
		{"empty body", "/api/meals", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid or missing data in request"}`, rec.Body.String())
		})
	}

	for _, table := range []string{"/api/workouts", "/api/meals", "/api/goals"} {
		rec := env.do(t, http.MethodGet, table, "")
		assert.JSONEq(t, `[]`, rec.Body.String(), table)
	}

	rec := env.do(t, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(), `fitness_validation_failures_total{operation="workout"} 1`)
}

func TestMealRoutes(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{"date":"2024-05-01","meal_type":"breakfast","food_name":"oats","calories":350,"protein":12,"carbs":60,"fats":6}`,
		`{"date":"2024-05-01","meal_type":"lunch","food_name":"salad","calories":400}`,
		`{"date":"2024-05-02","meal_type":"dinner","food_name":"pasta","calories":700}`,
	} {
		rec := env.do(t, http.MethodPost, "/api/meals", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	var meals []models.Meal
	rec := env.do(t, http.MethodGet, "/api/meals?date=2024-05-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &meals)
	require.Len(t, meals, 2)
	assert.Equal(t, "oats", meals[0].FoodName)
	assert.Equal(t, "salad", meals[1].FoodName)
	assert.Equal(t, 0, meals[1].Protein)

	rec = env.do(t, http.MethodGet, "/api/meals", "")
	decodeBody(t, rec, &meals)
	require.Len(t, meals, 3)
	assert.Equal(t, "2024-05-02", meals[0].Date)

	rec = env.do(t, http.MethodGet, "/api/meals/daily/2024-05-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary models.DailySummary
	decodeBody(t, rec, &summary)
	assert.Len(t, summary.Meals, 2)
	assert.Equal(t, models.NutritionTotals{Calories: 750, Protein: 12, Carbs: 60, Fats: 6}, summary.Totals)

	rec = env.do(t, http.MethodGet, "/api/meals/daily/1999-01-01", "")
	assert.JSONEq(t, `{"meals":[],"totals":{"calories":0,"protein":0,"carbs":0,"fats":0}}`, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/api/meals/"+itoa(meals[0].ID), "")
	assert.JSONEq(t, `{"message":"Meal deleted successfully"}`, rec.Body.String())
}

func TestCalorieGoalRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/calorie-goals/2024-05-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	for _, goal := range []string{"2000", "2200"} {
		rec = env.do(t, http.MethodPost, "/api/calorie-goals", `{"date":"2024-05-01","daily_goal":`+goal+`}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Calorie goal set successfully"}`, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/calorie-goals/2024-05-01", "")
	var goal models.CalorieGoal
	decodeBody(t, rec, &goal)
	assert.Equal(t, 2200, goal.DailyGoal)
	assert.Equal(t, "2024-05-01", goal.Date)
}

func TestGoalRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/goals", `{"goal_type":"weight","target_value":70}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Goal added successfully")

	rec = env.do(t, http.MethodGet, "/api/goals", "")
	var goals []map[string]interface{}
	decodeBody(t, rec, &goals)
	require.Len(t, goals, 1)
	assert.Nil(t, goals[0]["deadline"])
	assert.Contains(t, goals[0], "deadline")

	id := int64(goals[0]["id"].(float64))
	rec = env.do(t, http.MethodDelete, "/api/goals/"+itoa(id), "")
	assert.JSONEq(t, `{"message":"Goal deleted successfully"}`, rec.Body.String())
}

func TestStatsRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_workouts":0,"total_calories_burned":0,"total_duration":0,"total_calories_consumed":0,"net_calories":0}`, rec.Body.String())

	env.do(t, http.MethodPost, "/api/workouts", `{"date":"2024-05-01","type":"run","duration":30,"calories":600}`)
	env.do(t, http.MethodPost, "/api/meals", `{"date":"2024-05-01","meal_type":"lunch","food_name":"wrap","calories":450}`)

	rec = env.do(t, http.MethodGet, "/api/stats", "")
	assert.JSONEq(t, `{"total_workouts":1,"total_calories_burned":600,"total_duration":30,"total_calories_consumed":450,"net_calories":-150}`, rec.Body.String())
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodDelete, "/api/workouts/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInternalErrorIsOpaque(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Close())

	rec := env.do(t, http.MethodGet, "/api/workouts", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/stats", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/workouts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/workouts", "")

	rec := env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/workouts"`)
}

func TestListenAndServeShutsDown(t *testing.T) {
	env := newTestEnv(t)
	srv := NewServer(env.db, Options{Logger: zerolog.Nop()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	assert.NoError(t, <-done)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
