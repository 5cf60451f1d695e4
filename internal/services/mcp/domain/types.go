package domain

import "github.com/louisbranch/questboard/internal/progress"

// EmptyInput is the input of tools that take no arguments.
type EmptyInput struct{}

// GoalEntry is a goal with its derived threshold and progress.
type GoalEntry struct {
	ID          string  `json:"id" jsonschema:"goal identifier"`
	Title       string  `json:"title" jsonschema:"goal title"`
	Description string  `json:"description" jsonschema:"goal description"`
	Favorite    bool    `json:"favorite" jsonschema:"whether the goal is marked favorite"`
	Level       int     `json:"level" jsonschema:"current level, at least 1"`
	XP          int     `json:"xp" jsonschema:"accumulated experience points"`
	RequiredXP  int     `json:"required_xp" jsonschema:"threshold for the current level"`
	Progress    float64 `json:"progress" jsonschema:"xp toward the threshold clamped to [0, 1]"`
}

// TaskEntry is a task reward definition.
type TaskEntry struct {
	ID     string `json:"id" jsonschema:"task identifier"`
	GoalID string `json:"goal_id" jsonschema:"goal credited on completion"`
	Title  string `json:"title" jsonschema:"task title"`
	XP     int    `json:"xp" jsonschema:"reward in experience points"`
}

// DailyEntry is one slot of the daily board.
type DailyEntry struct {
	Slot      int       `json:"slot" jsonschema:"zero-based slot position"`
	Completed bool      `json:"completed" jsonschema:"whether the slot's reward was granted"`
	Task      TaskEntry `json:"task" jsonschema:"task in the slot"`
	Goal      GoalEntry `json:"goal" jsonschema:"goal the task credits"`
}

// DailyResult is the daily board with its completion counter.
type DailyResult struct {
	Entries   []DailyEntry `json:"entries" jsonschema:"board slots in order"`
	Completed int          `json:"completed" jsonschema:"number of completed slots"`
	Total     int          `json:"total" jsonschema:"number of slots"`
}

func goalEntry(goal progress.Goal) GoalEntry {
	return GoalEntry{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Favorite:    goal.Favorite,
		Level:       goal.Level,
		XP:          goal.XP,
		RequiredXP:  goal.RequiredXP(),
		Progress:    goal.Progress(),
	}
}

func taskEntry(task progress.Task) TaskEntry {
	return TaskEntry{ID: task.ID, GoalID: task.GoalID, Title: task.Title, XP: task.XP}
}

func dailyResult(board progress.Board) DailyResult {
	result := DailyResult{
		Entries:   make([]DailyEntry, 0, len(board.Entries)),
		Completed: board.Completed,
		Total:     board.Total,
	}
	for _, entry := range board.Entries {
		result.Entries = append(result.Entries, DailyEntry{
			Slot:      entry.Slot,
			Completed: entry.Completed,
			Task:      taskEntry(entry.Task),
			Goal:      goalEntry(entry.Goal),
		})
	}
	return result
}
