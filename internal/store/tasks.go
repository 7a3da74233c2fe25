package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

func validateDraft(d TaskDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if d.DurationMinutes <= 0 {
		return &ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}
	if d.Points <= 0 {
		return &ValidationError{Field: "points", Reason: "must be positive"}
	}
	if d.Category != "" {
		valid := false
		for _, c := range Categories {
			if c == d.Category {
				valid = true
				break
			}
		}
		if !valid {
			return &ValidationError{Field: "category", Reason: "unknown category " + d.Category}
		}
	}
	return nil
}

// AddTask validates the draft, assigns a unique id and creation timestamp,
// and appends the task to the account's list.
func (s *Store) AddTask(account string, d TaskDraft) (*Task, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}
	category := d.Category
	if category == "" {
		category = "other"
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO tasks (account, name, duration_minutes, category, status, points, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account, strings.TrimSpace(d.Name), d.DurationMinutes, category, string(StatusToDo), d.Points, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTask(account, id)
}

func (s *Store) GetTask(account string, id int64) (*Task, error) {
	t := &Task{}
	var createdAt, status string
	err := s.db.QueryRow(
		`SELECT id, account, name, duration_minutes, category, status, points, created_at
		 FROM tasks WHERE account = ? AND id = ?`, account, id,
	).Scan(&t.ID, &t.Account, &t.Name, &t.DurationMinutes, &t.Category, &status, &t.Points, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	t.Status = TaskStatus(status)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return t, nil
}

// ListTasks returns the account's tasks in insertion order.
func (s *Store) ListTasks(account string) ([]Task, error) {
	rows, err := s.db.Query(
		`SELECT id, account, name, duration_minutes, category, status, points, created_at
		 FROM tasks WHERE account = ? ORDER BY id`, account,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		var createdAt, status string
		if err := rows.Scan(&t.ID, &t.Account, &t.Name, &t.DurationMinutes, &t.Category, &status, &t.Points, &createdAt); err != nil {
			return nil, err
		}
		t.Status = TaskStatus(status)
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// RemoveTask deletes a task. An unknown id is reported as ErrNotFound
// rather than silently ignored.
func (s *Store) RemoveTask(account string, id int64) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE account = ? AND id = ?`, account, id)
	if err != nil {
		return fmt.Errorf("remove task: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CompleteTask marks a task completed, leaving every other field untouched.
// Completing an already-completed task is a no-op.
func (s *Store) CompleteTask(account string, id int64) (*Task, error) {
	res, err := s.db.Exec(
		`UPDATE tasks SET status = ? WHERE account = ? AND id = ?`,
		string(StatusCompleted), account, id,
	)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetTask(account, id)
}

// UpdateTask edits the user-settable fields of an existing task.
func (s *Store) UpdateTask(account string, id int64, d TaskDraft) (*Task, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}
	category := d.Category
	if category == "" {
		category = "other"
	}
	res, err := s.db.Exec(
		`UPDATE tasks SET name = ?, duration_minutes = ?, category = ?, points = ?
		 WHERE account = ? AND id = ?`,
		strings.TrimSpace(d.Name), d.DurationMinutes, category, d.Points, account, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetTask(account, id)
}

// ReplaceTasks overwrites the account's whole task list in one transaction,
// preserving the ids and timestamps of the imported records. This backs
// bulk JSON import; structural parse is the only validation applied.
func (s *Store) ReplaceTasks(account string, tasks []Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks WHERE account = ?`, account); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	for _, t := range tasks {
		createdAt := t.CreatedAt.UTC().Format(time.RFC3339)
		_, err := tx.Exec(
			`INSERT INTO tasks (id, account, name, duration_minutes, category, status, points, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, account, t.Name, t.DurationMinutes, t.Category, string(t.Status), t.Points, createdAt,
		)
		if err != nil {
			return fmt.Errorf("insert imported task %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}
