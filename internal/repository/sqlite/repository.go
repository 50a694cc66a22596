// Package sqlite implements the task store on an in-memory SQLite database.
//
// The database is always opened on ":memory:" so the store stays volatile like
// the default backend; what this backend adds is SQL-enforced id allocation
// (AUTOINCREMENT never reuses an id, even after deletes).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"todo-chat/internal/domain"
	"todo-chat/internal/errors"
	"todo-chat/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the repository.Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new volatile SQLite repository instance
func New() (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A connection pool would hand each conn its own empty :memory: database
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, description string) (*domain.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.NewValidationError("description is required", nil)
	}

	now := domain.Now()
	query := `
	INSERT INTO tasks (description, completed, created_at, updated_at)
	VALUES (?, 0, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, description, FormatTimeForDB(now), FormatTimeForDB(now))
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		ID:          id,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
	SELECT id, description, completed, created_at, updated_at
	FROM tasks
	WHERE id = ?`

	task, err := QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
	if err != nil {
		return nil, err
	}
	return task.ToDomain(), nil
}

// ListTasks retrieves all tasks ordered by ascending id
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	query := `
	SELECT id, description, completed, created_at, updated_at
	FROM tasks
	ORDER BY id ASC`

	tasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}
	return ToDomainSlice(tasks), nil
}

// UpdateTask applies a partial update and refreshes updated_at
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{FormatTimeForDB(domain.Now())}

	if update.Description != nil {
		if trimmed := strings.TrimSpace(*update.Description); trimmed != "" {
			sets = append(sets, "description = ?")
			args = append(args, trimmed)
		}
	}
	if update.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *update.Completed)
	}
	args = append(args, id)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if err := ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), args...); err != nil {
		return nil, err
	}

	return r.GetTask(ctx, id)
}

// CompleteTask marks a task as completed and refreshes updated_at
func (r *SQLiteRepository) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `UPDATE tasks SET completed = 1, updated_at = ? WHERE id = ?`
	if err := ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), FormatTimeForDB(domain.Now()), id); err != nil {
		return nil, err
	}

	return r.GetTask(ctx, id)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
