package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/filter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GoalListInput represents the MCP tool input for listing goals.
type GoalListInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"AIP-160 filter over id, title, favorite, level and xp, e.g. 'favorite' or 'level >= 2'"`
}

// GoalListResult represents the MCP tool output for listing goals.
type GoalListResult struct {
	Goals []GoalEntry `json:"goals" jsonschema:"matching goals ordered by id"`
}

// GoalInput identifies a single goal.
type GoalInput struct {
	GoalID string `json:"goal_id" jsonschema:"goal identifier"`
}

// GoalListTool defines the MCP tool schema for listing goals.
func GoalListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_goals",
		Description: "Lists goals with level, xp and progress, optionally filtered",
	}
}

// GoalGetTool defines the MCP tool schema for reading one goal.
func GoalGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_goal",
		Description: "Returns one goal by identifier",
	}
}

// ToggleFavoriteTool defines the MCP tool schema for flipping a goal's favorite flag.
func ToggleFavoriteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Flips the favorite flag of a goal and returns the updated goal",
	}
}

// GoalListHandler executes a goal listing.
func GoalListHandler(tracker *progress.Tracker) mcp.ToolHandlerFor[GoalListInput, GoalListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GoalListInput) (*mcp.CallToolResult, GoalListResult, error) {
		f, err := filter.Parse(input.Filter)
		if err != nil {
			return nil, GoalListResult{}, err
		}
		goals, err := tracker.Goals(ctx, f)
		if err != nil {
			return nil, GoalListResult{}, fmt.Errorf("list goals: %w", err)
		}
		result := GoalListResult{Goals: make([]GoalEntry, 0, len(goals))}
		for _, goal := range goals {
			result.Goals = append(result.Goals, goalEntry(goal))
		}
		return nil, result, nil
	}
}

// GoalGetHandler reads one goal.
func GoalGetHandler(tracker *progress.Tracker) mcp.ToolHandlerFor[GoalInput, GoalEntry] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GoalInput) (*mcp.CallToolResult, GoalEntry, error) {
		goal, err := tracker.Goal(ctx, strings.TrimSpace(input.GoalID))
		if err != nil {
			return nil, GoalEntry{}, err
		}
		return nil, goalEntry(goal), nil
	}
}

// ToggleFavoriteHandler flips a goal's favorite flag.
func ToggleFavoriteHandler(tracker *progress.Tracker, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[GoalInput, GoalEntry] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GoalInput) (*mcp.CallToolResult, GoalEntry, error) {
		goal, err := tracker.ToggleFavorite(ctx, strings.TrimSpace(input.GoalID))
		if err != nil {
			return nil, GoalEntry{}, err
		}
		notify.notify(ctx, GoalListResource().URI)
		return nil, goalEntry(goal), nil
	}
}
