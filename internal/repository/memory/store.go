// Package memory implements the default in-memory task store.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"todo-chat/internal/domain"
	"todo-chat/internal/errors"
)

// Store is a mutex-serialized in-memory task store. Ids are allocated from a
// monotonically increasing counter and never reused, so the ascending-id
// listing doubles as creation order.
type Store struct {
	mu     sync.Mutex
	tasks  []*domain.Task
	nextID int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{nextID: 1}
}

// CreateTask creates a new task with the next id and current timestamps
func (s *Store) CreateTask(ctx context.Context, description string) (*domain.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.NewValidationError("description is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := domain.Now()
	task := &domain.Task{
		ID:          s.nextID,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	return copyTask(task), nil
}

// GetTask retrieves a task by id
func (s *Store) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.find(id)
	if task == nil {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return copyTask(task), nil
}

// ListTasks returns all tasks ordered by ascending id
func (s *Store) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// tasks are appended with increasing ids and deletes preserve order,
	// so the slice is already sorted
	tasks := make([]*domain.Task, len(s.tasks))
	for i, task := range s.tasks {
		tasks[i] = copyTask(task)
	}
	return tasks, nil
}

// UpdateTask applies a partial update and refreshes updated_at
func (s *Store) UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.find(id)
	if task == nil {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	if update.Description != nil {
		if trimmed := strings.TrimSpace(*update.Description); trimmed != "" {
			task.Description = trimmed
		}
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	task.UpdatedAt = s.touch(task)

	return copyTask(task), nil
}

// CompleteTask marks a task as completed and refreshes updated_at
func (s *Store) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.find(id)
	if task == nil {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	task.Completed = true
	task.UpdatedAt = s.touch(task)

	return copyTask(task), nil
}

// DeleteTask removes a task by id
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}

// Close releases resources; the memory store has none.
func (s *Store) Close() error {
	return nil
}

// find returns the stored task with the given id, or nil. Caller holds the lock.
func (s *Store) find(id int64) *domain.Task {
	for _, task := range s.tasks {
		if task.ID == id {
			return task
		}
	}
	return nil
}

// touch returns a fresh updated_at that never precedes created_at,
// even if the wall clock steps backwards.
func (s *Store) touch(task *domain.Task) time.Time {
	now := domain.Now()
	if now.Before(task.CreatedAt) {
		return task.CreatedAt
	}
	return now
}

func copyTask(task *domain.Task) *domain.Task {
	clone := *task
	return &clone
}
