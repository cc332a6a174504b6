// ABOUTME: MCP resource implementations for fitness data.
// ABOUTME: Provides fitness://today and fitness://stats resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI = "fitness://today"
	statsURI = "fitness://stats"
)

func (s *Server) registerResources() {
	// fitness://today - meals, totals, workouts, and calorie goal for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Fitness Data",
		Description: "Today's meals with totals, workouts, and calorie goal",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fitness://stats - lifetime totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         statsURI,
		Name:        "Fitness Stats",
		Description: "Lifetime workout and nutrition totals",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	date := s.today()

	summary, err := s.repo.DailySummary(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	goal, err := s.repo.GetCalorieGoal(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get calorie goal: %w", err)
	}

	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	var burned int
	todayWorkouts := make([]*models.Workout, 0)
	for _, w := range workouts {
		if w.Date == date {
			todayWorkouts = append(todayWorkouts, w)
			burned += w.Calories
		}
	}

	result := map[string]interface{}{
		"date":            date,
		"meals":           summary.Meals,
		"totals":          summary.Totals,
		"workouts":        todayWorkouts,
		"calories_burned": burned,
		"calorie_goal":    nil,
	}
	if goal != nil {
		result["calorie_goal"] = goal.DailyGoal
		result["calories_remaining"] = int64(goal.DailyGoal) - summary.Totals.Calories
	}

	return jsonResource(todayURI, result)
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.stats.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return jsonResource(statsURI, summary)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
