package sqlite

import (
	"time"

	"todo-chat/internal/domain"
)

// Task is the database representation of a to-do item.
type Task struct {
	ID          int64
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToDomain converts a database Task to a domain Task.
func (t *Task) ToDomain() *domain.Task {
	return &domain.Task{
		ID:          t.ID,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToDomainSlice converts a slice of database Tasks to domain Tasks.
func ToDomainSlice(tasks []*Task) []*domain.Task {
	domainTasks := make([]*domain.Task, len(tasks))
	for i, task := range tasks {
		domainTasks[i] = task.ToDomain()
	}
	return domainTasks
}
