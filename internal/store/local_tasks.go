package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"krishimitra/internal/logging"
	"krishimitra/internal/types"
)

// =============================================================================
// TASKS
// =============================================================================

// ListOptions filters ListTasks.
type ListOptions struct {
	IncludeCompleted bool
	Limit            int
}

const taskColumns = "id, title, priority, category, due_date, due_time, completed"

// AddTask inserts t and returns it with its assigned id. source records
// where the task came from ("local" or "model").
func (s *LocalStore) AddTask(ctx context.Context, t types.Task, source string) (types.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return types.Task{}, fmt.Errorf("task title is empty")
	}
	if !t.Priority.Valid() {
		t.Priority = types.PriorityMedium
	}
	if !t.Category.Valid() {
		t.Category = types.CategoryGeneral
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if source == "" {
		source = "local"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, priority, category, due_date, due_time, completed, created_at, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, string(t.Priority), string(t.Category), t.DueDate, t.DueTime, boolInt(t.Completed), s.timestamp(), source,
	)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to add task %q: %v", t.Title, err)
		return types.Task{}, fmt.Errorf("failed to add task: %w", err)
	}

	logging.StoreDebug("Task added: id=%s title=%q source=%s", t.ID, t.Title, source)
	return t, nil
}

// CompleteTask marks a task complete. Completing a completed task is a no-op.
func (s *LocalStore) CompleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 1, completed_at = COALESCE(completed_at, ?) WHERE id = ?`,
		s.timestamp(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete task %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete task %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	logging.StoreDebug("Task completed: id=%s", id)
	return nil
}

// GetTask returns one task by id.
func (s *LocalStore) GetTask(ctx context.Context, id string) (types.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t, err
}

// ResolveTaskID expands a unique id prefix to the full task id.
func (s *LocalStore) ResolveTaskID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrTaskNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM tasks WHERE id = ? OR substr(id, 1, ?) = ? LIMIT 2", prefix, len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("failed to resolve task id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		if id == prefix {
			return id, nil
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}

// ListTasks returns tasks ordered open first, then by due date and time.
func (s *LocalStore) ListTasks(ctx context.Context, opts ListOptions) ([]types.Task, error) {
	timer := logging.StartTimer(logging.CategoryStore, "ListTasks")
	defer timer.Stop()

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT " + taskColumns + " FROM tasks"
	if !opts.IncludeCompleted {
		query += " WHERE completed = 0"
	}
	query += " ORDER BY completed, due_date = '', due_date, due_time, created_at"
	args := []interface{}{}
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to list tasks: %v", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// DeleteTask removes a task.
func (s *LocalStore) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (types.Task, error) {
	var (
		t                  types.Task
		priority, category string
		completed          int
	)
	if err := row.Scan(&t.ID, &t.Title, &priority, &category, &t.DueDate, &t.DueTime, &completed); err != nil {
		return types.Task{}, err
	}
	t.Priority = types.Priority(priority)
	t.Category = types.Category(category)
	t.Completed = completed != 0
	return t, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
