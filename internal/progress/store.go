package progress

import (
	"context"
	"fmt"

	"github.com/louisbranch/questboard/internal/progress/filter"
)

// GoalStore persists goals.
type GoalStore interface {
	GetGoal(ctx context.Context, id string) (Goal, error)
	// ListGoals returns goals matching f ordered by id.
	ListGoals(ctx context.Context, f filter.Filter) ([]Goal, error)
	PutGoal(ctx context.Context, goal Goal) error
}

// TaskStore persists tasks.
type TaskStore interface {
	GetTask(ctx context.Context, id string) (Task, error)
	// ListTasks returns every task ordered by id.
	ListTasks(ctx context.Context) ([]Task, error)
	PutTask(ctx context.Context, task Task) error
}

// DailyStore persists the daily board.
type DailyStore interface {
	// GetDaily returns ErrNotFound until a board has been stored.
	GetDaily(ctx context.Context) (Daily, error)
	PutDaily(ctx context.Context, daily Daily) error
}

// Store is the full persistence surface used by the tracker.
type Store interface {
	GoalStore
	TaskStore
	DailyStore
	Close() error
}

// Seed validates catalog and loads it into store.
func Seed(ctx context.Context, store Store, catalog Catalog) error {
	if store == nil {
		return fmt.Errorf("store is required")
	}
	if err := catalog.Validate(); err != nil {
		return err
	}
	for _, goal := range catalog.Goals {
		if err := store.PutGoal(ctx, goal); err != nil {
			return fmt.Errorf("seed goal %s: %w", goal.ID, err)
		}
	}
	for _, task := range catalog.Tasks {
		if err := store.PutTask(ctx, task); err != nil {
			return fmt.Errorf("seed task %s: %w", task.ID, err)
		}
	}
	return nil
}
