package services

import (
	"context"

	"todo-chat/internal/domain"
)

// TaskService defines the business operations on the task list.
// It is the single mutation path for both the CRUD handlers and the
// intent executor.
type TaskService interface {
	// Create validates and stores a new task.
	Create(ctx context.Context, description string) (*domain.Task, error)

	// Get retrieves a task by id.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// List returns all tasks ordered by ascending id.
	List(ctx context.Context) ([]*domain.Task, error)

	// Update applies a partial update to a task.
	Update(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error)

	// Complete marks a task as completed.
	Complete(ctx context.Context, id int64) (*domain.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id int64) error
}
