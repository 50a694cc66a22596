package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-chat/internal/domain"
	"todo-chat/internal/errors"
)

func TestStore_CreateTask(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{
			name:        "should create task with valid description",
			description: "buy milk",
		},
		{
			name:        "should trim surrounding whitespace",
			description: "  feed cat  ",
		},
		{
			name:        "should return validation error for empty description",
			description: "",
			wantErr:     true,
		},
		{
			name:        "should return validation error for whitespace-only description",
			description: "   ",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New()
			ctx := context.Background()

			task, err := store.CreateTask(ctx, tt.description)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Greater(t, task.ID, int64(0))
			assert.False(t, task.Completed)
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
			assert.Zero(t, task.CreatedAt.Nanosecond())
		})
	}
}

func TestStore_IDMonotonicity(t *testing.T) {
	store := New()
	ctx := context.Background()

	first, err := store.CreateTask(ctx, "first")
	require.NoError(t, err)
	second, err := store.CreateTask(ctx, "second")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	// Deleting must not free ids for reuse
	require.NoError(t, store.DeleteTask(ctx, second.ID))
	third, err := store.CreateTask(ctx, "third")
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func TestStore_ListTasks_AscendingID(t *testing.T) {
	store := New()
	ctx := context.Background()

	for _, description := range []string{"a", "b", "c"} {
		_, err := store.CreateTask(ctx, description)
		require.NoError(t, err)
	}

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i := 1; i < len(tasks); i++ {
		assert.Greater(t, tasks[i].ID, tasks[i-1].ID)
	}
}

func TestStore_UpdateTask(t *testing.T) {
	newDescription := "updated"
	emptyDescription := ""
	completed := true
	notCompleted := false

	tests := []struct {
		name            string
		update          domain.TaskUpdate
		wantDescription string
		wantCompleted   bool
	}{
		{
			name:            "should update description only",
			update:          domain.TaskUpdate{Description: &newDescription},
			wantDescription: "updated",
			wantCompleted:   false,
		},
		{
			name:            "should apply explicit completed false",
			update:          domain.TaskUpdate{Completed: &notCompleted},
			wantDescription: "original",
			wantCompleted:   false,
		},
		{
			name:            "should apply completed true",
			update:          domain.TaskUpdate{Completed: &completed},
			wantDescription: "original",
			wantCompleted:   true,
		},
		{
			name:            "should leave description unchanged when empty",
			update:          domain.TaskUpdate{Description: &emptyDescription, Completed: &completed},
			wantDescription: "original",
			wantCompleted:   true,
		},
		{
			name:            "should leave everything unchanged for empty update",
			update:          domain.TaskUpdate{},
			wantDescription: "original",
			wantCompleted:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New()
			ctx := context.Background()
			created, err := store.CreateTask(ctx, "original")
			require.NoError(t, err)

			updated, err := store.UpdateTask(ctx, created.ID, tt.update)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDescription, updated.Description)
			assert.Equal(t, tt.wantCompleted, updated.Completed)
			assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
		})
	}
}

func TestStore_CompleteTask(t *testing.T) {
	store := New()
	ctx := context.Background()

	created, err := store.CreateTask(ctx, "to finish")
	require.NoError(t, err)

	completed, err := store.CompleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.False(t, completed.UpdatedAt.Before(completed.CreatedAt))
}

func TestStore_NotFound(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.CreateTask(ctx, "only task")
	require.NoError(t, err)

	t.Run("should return not found for unknown get", func(t *testing.T) {
		_, err := store.GetTask(ctx, 99)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should return not found for unknown update without mutating", func(t *testing.T) {
		_, err := store.UpdateTask(ctx, 99, domain.TaskUpdate{})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should return not found for unknown complete", func(t *testing.T) {
		_, err := store.CompleteTask(ctx, 99)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should return not found for unknown delete", func(t *testing.T) {
		err := store.DeleteTask(ctx, 99)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	// The store must be untouched by the failures above
	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()

	created, err := store.CreateTask(ctx, "immutable")
	require.NoError(t, err)

	created.Description = "mutated by caller"

	fetched, err := store.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "immutable", fetched.Description)
}
