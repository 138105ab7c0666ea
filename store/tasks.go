package store

import (
	"context"
	"database/sql"
	"fmt"
)

const taskColumns = `id, title, description, due_date, status, tags, "order", archived, notebook_id, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (Task, error) {
	var (
		t                    Task
		desc, due, tags      sql.NullString
		status               string
		archived             int
		notebook             sql.NullInt64
		createdAt, updatedAt string
	)
	err := row.Scan(&t.ID, &t.Title, &desc, &due, &status, &tags, &t.Order, &archived, &notebook, &createdAt, &updatedAt)
	if err != nil {
		return Task{}, err
	}
	t.Description = desc.String
	t.DueDate = due.String
	t.Status = TaskStatus(status)
	t.Tags = tags.String
	t.Archived = archived != 0
	t.NotebookID = int64Ptr(notebook)
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)
	return t, nil
}

// InsertTask stores t and returns its new id. An empty status becomes todo
// and a zero Order appends the task after the current last one.
func (s *Store) InsertTask(ctx context.Context, t Task) (int64, error) {
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Order == 0 {
		last, err := s.MaxTaskOrder(ctx)
		if err != nil {
			return 0, err
		}
		t.Order = last + 1
	}
	now := s.timestamp()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, due_date, status, tags, "order", archived, notebook_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		t.Title, nullString(t.Description), nullString(t.DueDate), string(t.Status),
		nullString(NormalizeTags(t.Tags)), t.Order, nullInt64(t.NotebookID), now, now)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetTask(ctx context.Context, id int64) (Task, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row)
	if err != nil {
		return Task{}, notFound(err, "task", id)
	}
	return t, nil
}

// UpdateTask overwrites the editable fields of the task with t.ID.
func (s *Store) UpdateTask(ctx context.Context, t Task) error {
	if t.Status == "" {
		t.Status = StatusTodo
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, status = ?, tags = ?, notebook_id = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, nullString(t.Description), nullString(t.DueDate), string(t.Status),
		nullString(NormalizeTags(t.Tags)), nullInt64(t.NotebookID), s.timestamp(), t.ID)
	if err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	return checkAffected(res, "task", t.ID)
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return checkAffected(res, "task", id)
}

func (s *Store) ArchiveTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET archived = 1, updated_at = ? WHERE id = ?", s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("archive task %d: %w", id, err)
	}
	return checkAffected(res, "task", id)
}

// ListTasks returns the unarchived tasks of a notebook (nil for tasks
// outside any notebook) in display order.
func (s *Store) ListTasks(ctx context.Context, notebookID *int64) ([]Task, error) {
	where, args := notebookClause(notebookID)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE archived = 0 AND "+where+` ORDER BY "order" ASC, id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MaxTaskOrder returns the largest task order, or 0 when there are no tasks.
func (s *Store) MaxTaskOrder(ctx context.Context) (int64, error) {
	var last sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX("order") FROM tasks`).Scan(&last); err != nil {
		return 0, fmt.Errorf("max task order: %w", err)
	}
	return last.Int64, nil
}

func (s *Store) UpdateTaskOrder(ctx context.Context, id, order int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET "order" = ?, updated_at = ? WHERE id = ?`, order, s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("reorder task %d: %w", id, err)
	}
	return checkAffected(res, "task", id)
}
