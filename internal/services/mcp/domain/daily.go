package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SlotInput addresses one slot of the daily board.
type SlotInput struct {
	Slot int `json:"slot" jsonschema:"zero-based slot position"`
}

// CompleteTaskResult represents the MCP tool output for completing a task.
type CompleteTaskResult struct {
	Slot int       `json:"slot" jsonschema:"completed slot"`
	Goal GoalEntry `json:"goal" jsonschema:"goal after the reward was applied"`
}

// ResetTaskResult represents the MCP tool output for replacing a task.
type ResetTaskResult struct {
	Slot   int    `json:"slot" jsonschema:"replaced slot"`
	TaskID string `json:"task_id" jsonschema:"replacement task identifier"`
}

// DailyGetTool defines the MCP tool schema for reading the daily board.
func DailyGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_daily",
		Description: "Returns today's tasks with their goals and completion state",
	}
}

// DailyNewTool defines the MCP tool schema for drawing a fresh daily board.
func DailyNewTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "new_daily",
		Description: "Draws a fresh daily board, discarding current completion state",
	}
}

// CompleteTaskTool defines the MCP tool schema for completing a daily task.
func CompleteTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "complete_task",
		Description: "Completes the task in a daily slot and credits its goal",
	}
}

// ResetTaskTool defines the MCP tool schema for replacing a daily task.
func ResetTaskTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "reset_task",
		Description: "Replaces the task in a daily slot with one not already on the board",
	}
}

// DailyGetHandler reads the daily board, creating it on first use.
func DailyGetHandler(tracker *progress.Tracker) mcp.ToolHandlerFor[EmptyInput, DailyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, DailyResult, error) {
		board, err := tracker.Board(ctx)
		if err != nil {
			return nil, DailyResult{}, fmt.Errorf("load daily board: %w", err)
		}
		return nil, dailyResult(board), nil
	}
}

// DailyNewHandler draws a fresh board.
func DailyNewHandler(tracker *progress.Tracker, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[EmptyInput, DailyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, DailyResult, error) {
		if _, err := tracker.NewDaily(ctx); err != nil {
			return nil, DailyResult{}, err
		}
		board, err := tracker.Board(ctx)
		if err != nil {
			return nil, DailyResult{}, fmt.Errorf("load daily board: %w", err)
		}
		notify.notify(ctx, DailyResource().URI)
		return nil, dailyResult(board), nil
	}
}

// CompleteTaskHandler completes a slot.
func CompleteTaskHandler(tracker *progress.Tracker, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[SlotInput, CompleteTaskResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SlotInput) (*mcp.CallToolResult, CompleteTaskResult, error) {
		goal, err := tracker.CompleteTask(ctx, input.Slot)
		if err != nil {
			return nil, CompleteTaskResult{}, err
		}
		notify.notify(ctx, DailyResource().URI)
		notify.notify(ctx, GoalListResource().URI)
		return nil, CompleteTaskResult{Slot: input.Slot, Goal: goalEntry(goal)}, nil
	}
}

// ResetTaskHandler replaces a slot's task.
func ResetTaskHandler(tracker *progress.Tracker, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[SlotInput, ResetTaskResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SlotInput) (*mcp.CallToolResult, ResetTaskResult, error) {
		slot, err := tracker.ResetTask(ctx, input.Slot)
		if err != nil {
			return nil, ResetTaskResult{}, err
		}
		notify.notify(ctx, DailyResource().URI)
		return nil, ResetTaskResult{Slot: input.Slot, TaskID: slot.TaskID}, nil
	}
}
