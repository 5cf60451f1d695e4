package progress

import (
	"fmt"
	"strings"
)

// Catalog is the fixed set of goals and tasks loaded at process start.
type Catalog struct {
	Goals []Goal
	Tasks []Task
}

// DefaultCatalog returns the built-in demo goals and tasks.
func DefaultCatalog() Catalog {
	return Catalog{
		Goals: []Goal{
			{ID: "1", Title: "Get fit", Description: "Build a steady exercise habit.", Level: 3, XP: 300},
			{ID: "2", Title: "Learn Go", Description: "Ship a small service end to end.", Level: 2, XP: 150, Favorite: true},
			{ID: "3", Title: "Read more", Description: "Finish one book a month.", Level: 1, XP: 40},
		},
		Tasks: []Task{
			{ID: "1", GoalID: "1", Title: "Go for a run", XP: 10},
			{ID: "2", GoalID: "2", Title: "Finish a Go tutorial", XP: 20},
			{ID: "3", GoalID: "3", Title: "Read 20 pages", XP: 15},
			{ID: "4", GoalID: "1", Title: "Stretch for 10 minutes", XP: 5},
			{ID: "5", GoalID: "2", Title: "Write a small CLI", XP: 30},
			{ID: "6", GoalID: "3", Title: "Summarize a chapter", XP: 10},
		},
	}
}

// Validate checks identifiers, rewards, levels and task-to-goal references.
func (c Catalog) Validate() error {
	goals := make(map[string]struct{}, len(c.Goals))
	for _, goal := range c.Goals {
		id := strings.TrimSpace(goal.ID)
		if id == "" {
			return fmt.Errorf("goal id is required: %w", ErrInvalidCatalog)
		}
		if _, ok := goals[id]; ok {
			return fmt.Errorf("duplicate goal %q: %w", id, ErrInvalidCatalog)
		}
		if goal.Level < 1 {
			return fmt.Errorf("goal %q level %d must be at least 1: %w", id, goal.Level, ErrInvalidCatalog)
		}
		if goal.XP < 0 {
			return fmt.Errorf("goal %q xp %d must not be negative: %w", id, goal.XP, ErrInvalidCatalog)
		}
		goals[id] = struct{}{}
	}

	tasks := make(map[string]struct{}, len(c.Tasks))
	for _, task := range c.Tasks {
		id := strings.TrimSpace(task.ID)
		if id == "" {
			return fmt.Errorf("task id is required: %w", ErrInvalidCatalog)
		}
		if _, ok := tasks[id]; ok {
			return fmt.Errorf("duplicate task %q: %w", id, ErrInvalidCatalog)
		}
		if task.XP <= 0 {
			return fmt.Errorf("task %q reward %d must be positive: %w", id, task.XP, ErrInvalidCatalog)
		}
		if _, ok := goals[task.GoalID]; !ok {
			return fmt.Errorf("task %q references unknown goal %q: %w", id, task.GoalID, ErrInvalidCatalog)
		}
		tasks[id] = struct{}{}
	}
	return nil
}

// TaskIDs returns task identifiers in catalog order.
func (c Catalog) TaskIDs() []string {
	ids := make([]string, 0, len(c.Tasks))
	for _, task := range c.Tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
