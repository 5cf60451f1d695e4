package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/filter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResourceUpdateNotifier is told when a tool changed the data behind a resource URI.
type ResourceUpdateNotifier func(ctx context.Context, uri string)

func (n ResourceUpdateNotifier) notify(ctx context.Context, uri string) {
	if n != nil {
		n(ctx, uri)
	}
}

// GoalListResource defines the readable goal listing.
func GoalListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "goal_list",
		Title:       "Goals",
		Description: "Readable listing of every goal with level and xp",
		MIMEType:    "application/json",
		URI:         "questboard://goals",
	}
}

// DailyResource defines the readable daily board.
func DailyResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "daily",
		Title:       "Daily Tasks",
		Description: "Readable daily board with completion state",
		MIMEType:    "application/json",
		URI:         "questboard://daily",
	}
}

// GoalListResourceHandler reads every goal.
func GoalListResourceHandler(tracker *progress.Tracker) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		goals, err := tracker.Goals(ctx, filter.Filter{})
		if err != nil {
			return nil, fmt.Errorf("goal list failed: %w", err)
		}
		payload := GoalListResult{Goals: make([]GoalEntry, 0, len(goals))}
		for _, goal := range goals {
			payload.Goals = append(payload.Goals, goalEntry(goal))
		}
		return jsonResource(resourceURI(req, GoalListResource().URI), payload)
	}
}

// DailyResourceHandler reads the daily board.
func DailyResourceHandler(tracker *progress.Tracker) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		board, err := tracker.Board(ctx)
		if err != nil {
			return nil, fmt.Errorf("daily board failed: %w", err)
		}
		return jsonResource(resourceURI(req, DailyResource().URI), dailyResult(board))
	}
}

func resourceURI(req *mcp.ReadResourceRequest, fallback string) string {
	if req != nil && req.Params != nil && req.Params.URI != "" {
		return req.Params.URI
	}
	return fallback
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
