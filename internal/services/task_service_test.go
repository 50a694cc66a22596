package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-chat/internal/domain"
	"todo-chat/internal/errors"
	"todo-chat/internal/repository/memory"
)

func setupTaskService(t *testing.T) TaskService {
	t.Helper()
	return NewTaskService(memory.New())
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:        "should create task with valid description",
			description: "buy milk",
		},
		{
			name:        "should create task with minimum length description",
			description: "x",
		},
		{
			name:        "should return validation error for empty description",
			description: "",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:        "should return validation error for whitespace-only description",
			description: "   ",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:        "should return validation error for very long description",
			description: strings.Repeat("a", 600),
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "description")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := setupTaskService(t)
			ctx := context.Background()

			// Act
			result, err := service.Create(ctx, tt.description)

			// Assert
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Greater(t, result.ID, int64(0))
				assert.Equal(t, strings.TrimSpace(tt.description), result.Description)
			}
		})
	}
}

func TestTaskService_Get(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "find me")
	require.NoError(t, err)

	t.Run("should return existing task", func(t *testing.T) {
		found, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("should return validation error for non-positive id", func(t *testing.T) {
		_, err := service.Get(ctx, 0)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		_, err := service.Get(ctx, 9999)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestTaskService_Update(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "original")
	require.NoError(t, err)

	t.Run("should update description", func(t *testing.T) {
		newDescription := "renamed"
		updated, err := service.Update(ctx, created.ID, domain.TaskUpdate{Description: &newDescription})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Description)
	})

	t.Run("should accept empty update and refresh updated_at", func(t *testing.T) {
		updated, err := service.Update(ctx, created.ID, domain.TaskUpdate{})
		require.NoError(t, err)
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := service.Update(ctx, -1, domain.TaskUpdate{})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		_, err := service.Update(ctx, 9999, domain.TaskUpdate{})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestTaskService_Complete(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "finish me")
	require.NoError(t, err)

	completed, err := service.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	_, err = service.Complete(ctx, 9999)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTaskService_Delete(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "remove me")
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	_, err = service.Get(ctx, created.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = service.Delete(ctx, created.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTaskService_List(t *testing.T) {
	service := setupTaskService(t)
	ctx := context.Background()

	tasks, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = service.Create(ctx, "one")
	require.NoError(t, err)
	_, err = service.Create(ctx, "two")
	require.NoError(t, err)

	tasks, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
