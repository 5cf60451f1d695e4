package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/louisbranch/questboard/internal/progress/filter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/questboard/internal/progress"

// BoardEntry is a daily slot joined with its task and goal.
type BoardEntry struct {
	Slot      int  `json:"slot"`
	Task      Task `json:"task"`
	Goal      Goal `json:"goal"`
	Completed bool `json:"completed"`
}

// Board is the rendered view of the daily selection.
type Board struct {
	Entries   []BoardEntry `json:"entries"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithDailySize overrides the number of slots on a new board.
func WithDailySize(size int) Option {
	return func(t *Tracker) {
		t.size = size
	}
}

// WithTracer overrides the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(t *Tracker) {
		if tracer != nil {
			t.tracer = tracer
		}
	}
}

// Tracker applies progression rules to goals and the daily board.
//
// Mutations are serialized so each read-modify-write sees the previous one.
type Tracker struct {
	mu       sync.Mutex
	store    Store
	selector *Selector
	size     int
	tracer   trace.Tracer
}

// NewTracker creates a tracker over store using selector for random picks.
func NewTracker(store Store, selector *Selector, opts ...Option) (*Tracker, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if selector == nil {
		return nil, errors.New("selector is required")
	}
	t := &Tracker{
		store:    store,
		selector: selector,
		size:     DefaultDailySize,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.size < 0 {
		return nil, fmt.Errorf("daily size %d: %w", t.size, ErrInvalidCount)
	}
	return t, nil
}

// DailySize returns the number of slots on a new board.
func (t *Tracker) DailySize() int {
	return t.size
}

// NewDaily replaces the board with a fresh random selection.
func (t *Tracker) NewDaily(ctx context.Context) (daily Daily, err error) {
	ctx, span := t.tracer.Start(ctx, "progress.NewDaily")
	defer func() { endSpan(span, err) }()

	t.mu.Lock()
	defer t.mu.Unlock()

	daily, err = t.pickDaily(ctx)
	if err != nil {
		return Daily{}, err
	}
	span.SetAttributes(attribute.StringSlice("progress.task_ids", daily.TaskIDs()))
	return daily.Clone(), nil
}

// Daily returns the current board, creating one on first use.
func (t *Tracker) Daily(ctx context.Context) (Daily, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	daily, err := t.loadDaily(ctx)
	if err != nil {
		return Daily{}, err
	}
	return daily.Clone(), nil
}

// Board returns the current board joined with tasks and goals.
func (t *Tracker) Board(ctx context.Context) (Board, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	daily, err := t.loadDaily(ctx)
	if err != nil {
		return Board{}, err
	}
	board := Board{Entries: make([]BoardEntry, 0, len(daily.Slots)), Total: len(daily.Slots)}
	for i, slot := range daily.Slots {
		task, err := t.store.GetTask(ctx, slot.TaskID)
		if err != nil {
			return Board{}, fmt.Errorf("get task %s: %w", slot.TaskID, err)
		}
		goal, err := t.store.GetGoal(ctx, task.GoalID)
		if err != nil {
			return Board{}, fmt.Errorf("get goal %s: %w", task.GoalID, err)
		}
		board.Entries = append(board.Entries, BoardEntry{
			Slot:      i,
			Task:      task,
			Goal:      goal,
			Completed: slot.Completed,
		})
		if slot.Completed {
			board.Completed++
		}
	}
	return board, nil
}

// CompleteTask marks slot completed and grants its reward to the owning goal.
func (t *Tracker) CompleteTask(ctx context.Context, slot int) (goal Goal, err error) {
	ctx, span := t.tracer.Start(ctx, "progress.CompleteTask", trace.WithAttributes(attribute.Int("progress.slot", slot)))
	defer func() { endSpan(span, err) }()

	t.mu.Lock()
	defer t.mu.Unlock()

	daily, err := t.loadDaily(ctx)
	if err != nil {
		return Goal{}, err
	}
	current, ok := daily.Slot(slot)
	if !ok {
		return Goal{}, fmt.Errorf("slot %d of %d: %w", slot, len(daily.Slots), ErrSlotOutOfRange)
	}
	if current.Completed {
		return Goal{}, fmt.Errorf("slot %d: %w", slot, ErrSlotCompleted)
	}
	task, err := t.store.GetTask(ctx, current.TaskID)
	if err != nil {
		return Goal{}, fmt.Errorf("get task %s: %w", current.TaskID, err)
	}
	goal, err = t.store.GetGoal(ctx, task.GoalID)
	if err != nil {
		return Goal{}, fmt.Errorf("get goal %s: %w", task.GoalID, err)
	}
	span.SetAttributes(
		attribute.String("progress.task_id", task.ID),
		attribute.String("progress.goal_id", goal.ID),
		attribute.Int("progress.reward", task.XP),
	)

	goal.XP += task.XP
	if err := t.store.PutGoal(ctx, goal); err != nil {
		return Goal{}, fmt.Errorf("put goal %s: %w", goal.ID, err)
	}
	daily.Slots[slot].Completed = true
	if err := t.store.PutDaily(ctx, daily); err != nil {
		return Goal{}, fmt.Errorf("put daily: %w", err)
	}
	return goal, nil
}

// ResetTask swaps slot for a task not currently on the board and clears its
// completion flag.
func (t *Tracker) ResetTask(ctx context.Context, slot int) (replacement DailySlot, err error) {
	ctx, span := t.tracer.Start(ctx, "progress.ResetTask", trace.WithAttributes(attribute.Int("progress.slot", slot)))
	defer func() { endSpan(span, err) }()

	t.mu.Lock()
	defer t.mu.Unlock()

	daily, err := t.loadDaily(ctx)
	if err != nil {
		return DailySlot{}, err
	}
	current, ok := daily.Slot(slot)
	if !ok {
		return DailySlot{}, fmt.Errorf("slot %d of %d: %w", slot, len(daily.Slots), ErrSlotOutOfRange)
	}
	ids, err := t.taskIDs(ctx)
	if err != nil {
		return DailySlot{}, err
	}
	next, err := PickReplacement(t.selector, ids, daily.TaskIDs())
	if err != nil {
		return DailySlot{}, err
	}
	span.SetAttributes(
		attribute.String("progress.previous_task_id", current.TaskID),
		attribute.String("progress.task_id", next),
	)

	replacement = DailySlot{TaskID: next}
	daily.Slots[slot] = replacement
	if err := t.store.PutDaily(ctx, daily); err != nil {
		return DailySlot{}, fmt.Errorf("put daily: %w", err)
	}
	return replacement, nil
}

// ToggleFavorite flips the favorite flag of a goal.
func (t *Tracker) ToggleFavorite(ctx context.Context, goalID string) (goal Goal, err error) {
	ctx, span := t.tracer.Start(ctx, "progress.ToggleFavorite", trace.WithAttributes(attribute.String("progress.goal_id", goalID)))
	defer func() { endSpan(span, err) }()

	t.mu.Lock()
	defer t.mu.Unlock()

	goal, err = t.store.GetGoal(ctx, goalID)
	if err != nil {
		return Goal{}, fmt.Errorf("get goal %s: %w", goalID, err)
	}
	goal.Favorite = !goal.Favorite
	if err := t.store.PutGoal(ctx, goal); err != nil {
		return Goal{}, fmt.Errorf("put goal %s: %w", goal.ID, err)
	}
	span.SetAttributes(attribute.Bool("progress.favorite", goal.Favorite))
	return goal, nil
}

// Goals lists goals matching f.
func (t *Tracker) Goals(ctx context.Context, f filter.Filter) ([]Goal, error) {
	goals, err := t.store.ListGoals(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// Goal returns one goal by id.
func (t *Tracker) Goal(ctx context.Context, id string) (Goal, error) {
	return t.store.GetGoal(ctx, id)
}

// loadDaily must be called with t.mu held.
func (t *Tracker) loadDaily(ctx context.Context) (Daily, error) {
	daily, err := t.store.GetDaily(ctx)
	if err == nil {
		return daily, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Daily{}, fmt.Errorf("get daily: %w", err)
	}
	return t.pickDaily(ctx)
}

// pickDaily must be called with t.mu held.
func (t *Tracker) pickDaily(ctx context.Context) (Daily, error) {
	ids, err := t.taskIDs(ctx)
	if err != nil {
		return Daily{}, err
	}
	picked, err := PickN(t.selector, ids, t.size)
	if err != nil {
		return Daily{}, fmt.Errorf("pick daily tasks: %w", err)
	}
	daily := NewDailyFromIDs(picked)
	if err := t.store.PutDaily(ctx, daily); err != nil {
		return Daily{}, fmt.Errorf("put daily: %w", err)
	}
	return daily, nil
}

func (t *Tracker) taskIDs(ctx context.Context) ([]string, error) {
	tasks, err := t.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
