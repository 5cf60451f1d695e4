// Package memory provides a map-backed progress store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/filter"
)

// Store keeps goals, tasks and the daily board in process memory.
type Store struct {
	mu    sync.RWMutex
	goals map[string]progress.Goal
	tasks map[string]progress.Task
	daily *progress.Daily
}

var _ progress.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		goals: make(map[string]progress.Goal),
		tasks: make(map[string]progress.Task),
	}
}

// GetGoal fetches a goal by id.
func (s *Store) GetGoal(ctx context.Context, id string) (progress.Goal, error) {
	if err := ctx.Err(); err != nil {
		return progress.Goal{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[id]
	if !ok {
		return progress.Goal{}, fmt.Errorf("goal %q: %w", id, progress.ErrNotFound)
	}
	return goal, nil
}

// ListGoals returns goals matching f ordered by id.
func (s *Store) ListGoals(ctx context.Context, f filter.Filter) ([]progress.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]progress.Goal, 0, len(s.goals))
	for _, goal := range s.goals {
		ok, err := f.Match(goal)
		if err != nil {
			return nil, err
		}
		if ok {
			goals = append(goals, goal)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return lessID(goals[i].ID, goals[j].ID) })
	return goals, nil
}

// PutGoal inserts or replaces a goal.
func (s *Store) PutGoal(ctx context.Context, goal progress.Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(goal.ID) == "" {
		return fmt.Errorf("goal id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals[goal.ID] = goal
	return nil
}

// GetTask fetches a task by id.
func (s *Store) GetTask(ctx context.Context, id string) (progress.Task, error) {
	if err := ctx.Err(); err != nil {
		return progress.Task{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return progress.Task{}, fmt.Errorf("task %q: %w", id, progress.ErrNotFound)
	}
	return task, nil
}

// ListTasks returns every task ordered by id.
func (s *Store) ListTasks(ctx context.Context) ([]progress.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]progress.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return lessID(tasks[i].ID, tasks[j].ID) })
	return tasks, nil
}

// PutTask inserts or replaces a task.
func (s *Store) PutTask(ctx context.Context, task progress.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(task.ID) == "" {
		return fmt.Errorf("task id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[task.ID] = task
	return nil
}

// GetDaily returns the stored board.
func (s *Store) GetDaily(ctx context.Context) (progress.Daily, error) {
	if err := ctx.Err(); err != nil {
		return progress.Daily{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.daily == nil {
		return progress.Daily{}, fmt.Errorf("daily: %w", progress.ErrNotFound)
	}
	return s.daily.Clone(), nil
}

// PutDaily replaces the stored board.
func (s *Store) PutDaily(ctx context.Context, daily progress.Daily) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := daily.Clone()
	s.daily = &stored
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// lessID orders numeric ids numerically and falls back to string order.
func lessID(a, b string) bool {
	if len(a) != len(b) && isDigits(a) && isDigits(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
