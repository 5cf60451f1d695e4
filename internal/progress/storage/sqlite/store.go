// Package sqlite provides a SQLite-backed progress store.
//
// Databases live in a named shared-cache memory file, so state lasts only as
// long as the process holds the store open.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/questboard/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/filter"
	"github.com/louisbranch/questboard/internal/progress/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists progress state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ progress.Store = (*Store)(nil)

// DSN returns the shared-cache memory DSN for a named database.
func DSN(name string) string {
	return "file:" + url.PathEscape(name) + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
}

// Open opens a named in-memory SQLite store and applies embedded migrations.
func Open(ctx context.Context, name string) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("database name is required")
	}
	sqlDB, err := sql.Open("sqlite", DSN(name))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// The memory database is dropped when its last connection closes.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// GetGoal fetches a goal by id.
func (s *Store) GetGoal(ctx context.Context, id string) (progress.Goal, error) {
	if err := s.ready(ctx); err != nil {
		return progress.Goal{}, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, description, favorite, level, xp
		   FROM goals
		  WHERE id = ?`,
		id,
	)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return progress.Goal{}, fmt.Errorf("goal %q: %w", id, progress.ErrNotFound)
		}
		return progress.Goal{}, fmt.Errorf("get goal: %w", err)
	}
	return goal, nil
}

// ListGoals returns goals matching f ordered by id.
func (s *Store) ListGoals(ctx context.Context, f filter.Filter) ([]progress.Goal, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	cond, err := f.SQL()
	if err != nil {
		return nil, err
	}
	query := `SELECT id, title, description, favorite, level, xp FROM goals`
	if cond.Clause != "" {
		query += " WHERE " + cond.Clause
	}
	query += " ORDER BY length(id), id"

	rows, err := s.sqlDB.QueryContext(ctx, query, cond.Params...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := []progress.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

// PutGoal inserts or replaces a goal.
func (s *Store) PutGoal(ctx context.Context, goal progress.Goal) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(goal.ID) == "" {
		return fmt.Errorf("goal id is required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO goals (id, title, description, favorite, level, xp)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   description = excluded.description,
		   favorite = excluded.favorite,
		   level = excluded.level,
		   xp = excluded.xp`,
		goal.ID,
		goal.Title,
		goal.Description,
		boolToInt(goal.Favorite),
		goal.Level,
		goal.XP,
	)
	if err != nil {
		return fmt.Errorf("put goal: %w", err)
	}
	return nil
}

// GetTask fetches a task by id.
func (s *Store) GetTask(ctx context.Context, id string) (progress.Task, error) {
	if err := s.ready(ctx); err != nil {
		return progress.Task{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT id, goal_id, title, xp FROM tasks WHERE id = ?`, id)
	var task progress.Task
	if err := row.Scan(&task.ID, &task.GoalID, &task.Title, &task.XP); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return progress.Task{}, fmt.Errorf("task %q: %w", id, progress.ErrNotFound)
		}
		return progress.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// ListTasks returns every task ordered by id.
func (s *Store) ListTasks(ctx context.Context) ([]progress.Task, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, goal_id, title, xp FROM tasks ORDER BY length(id), id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []progress.Task{}
	for rows.Next() {
		var task progress.Task
		if err := rows.Scan(&task.ID, &task.GoalID, &task.Title, &task.XP); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// PutTask inserts or replaces a task.
func (s *Store) PutTask(ctx context.Context, task progress.Task) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(task.ID) == "" {
		return fmt.Errorf("task id is required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO tasks (id, goal_id, title, xp)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   goal_id = excluded.goal_id,
		   title = excluded.title,
		   xp = excluded.xp`,
		task.ID,
		task.GoalID,
		task.Title,
		task.XP,
	)
	if err != nil {
		return fmt.Errorf("put task: %w", err)
	}
	return nil
}

// GetDaily returns the stored board.
func (s *Store) GetDaily(ctx context.Context) (progress.Daily, error) {
	if err := s.ready(ctx); err != nil {
		return progress.Daily{}, err
	}
	var found int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM daily_boards WHERE id = 1`).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return progress.Daily{}, fmt.Errorf("daily: %w", progress.ErrNotFound)
		}
		return progress.Daily{}, fmt.Errorf("get daily: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT task_id, completed FROM daily_slots ORDER BY position`)
	if err != nil {
		return progress.Daily{}, fmt.Errorf("list daily slots: %w", err)
	}
	defer rows.Close()

	daily := progress.Daily{Slots: []progress.DailySlot{}}
	for rows.Next() {
		var slot progress.DailySlot
		var completed int
		if err := rows.Scan(&slot.TaskID, &completed); err != nil {
			return progress.Daily{}, fmt.Errorf("scan daily slot: %w", err)
		}
		slot.Completed = completed != 0
		daily.Slots = append(daily.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return progress.Daily{}, fmt.Errorf("iterate daily slots: %w", err)
	}
	return daily, nil
}

// PutDaily replaces the stored board.
func (s *Store) PutDaily(ctx context.Context, daily progress.Daily) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin daily transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO daily_boards (id, updated_at) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at`,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("put daily board: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_slots`); err != nil {
		return fmt.Errorf("clear daily slots: %w", err)
	}
	for i, slot := range daily.Slots {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO daily_slots (position, task_id, completed) VALUES (?, ?, ?)`,
			i,
			slot.TaskID,
			boolToInt(slot.Completed),
		); err != nil {
			return fmt.Errorf("put daily slot %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit daily: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (progress.Goal, error) {
	var goal progress.Goal
	var favorite int
	if err := row.Scan(&goal.ID, &goal.Title, &goal.Description, &favorite, &goal.Level, &goal.XP); err != nil {
		return progress.Goal{}, err
	}
	goal.Favorite = favorite != 0
	return goal, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
