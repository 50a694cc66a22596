// Package repository defines the storage contract for tasks.
//
// Every backend is volatile by design: the task list lives only for the
// lifetime of the process. Backends must keep ids strictly increasing and
// never reuse one, even after deletes.
package repository

import (
	"context"

	"todo-chat/internal/domain"
)

// Repository defines the interface for task storage operations
type Repository interface {
	// CreateTask allocates the next id, stamps both timestamps and stores the task.
	// The description must already be trimmed and non-empty.
	CreateTask(ctx context.Context, description string) (*domain.Task, error)

	// GetTask retrieves a task by id; a missing id is a not-found error.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns all tasks ordered by ascending id.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// UpdateTask applies a partial update and refreshes updated_at on any match,
	// including an empty update.
	UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error)

	// CompleteTask marks a task completed and refreshes updated_at.
	CompleteTask(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteTask removes a task; its id is never handed out again.
	DeleteTask(ctx context.Context, id int64) error

	// Close releases backend resources.
	Close() error
}
