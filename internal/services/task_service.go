package services

import (
	"context"
	"strings"

	"todo-chat/internal/domain"
	"todo-chat/internal/errors"
	"todo-chat/internal/repository"
	"todo-chat/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo repository.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
	}
}

// validateAndTrimDescription validates and trims a task description
func (t *taskServiceImpl) validateAndTrimDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if err := t.taskValidator.ValidateDescription(trimmed); err != nil {
		return "", errors.NewValidationError("invalid task description", err)
	}
	return trimmed, nil
}

// Create validates and stores a new task
func (t *taskServiceImpl) Create(ctx context.Context, description string) (*domain.Task, error) {
	trimmed, err := t.validateAndTrimDescription(description)
	if err != nil {
		return nil, err
	}

	return t.repo.CreateTask(ctx, trimmed)
}

// Get retrieves a task by its ID
func (t *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	return t.repo.GetTask(ctx, id)
}

// List returns all tasks ordered by ascending id
func (t *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	return t.repo.ListTasks(ctx)
}

// Update applies a partial update to a task
func (t *taskServiceImpl) Update(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskForUpdate(id, update.Description); err != nil {
		return nil, errors.NewValidationError("invalid task update", err)
	}

	return t.repo.UpdateTask(ctx, id, update)
}

// Complete marks a task as completed
func (t *taskServiceImpl) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	return t.repo.CompleteTask(ctx, id)
}

// Delete removes a task
func (t *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}

	return t.repo.DeleteTask(ctx, id)
}
