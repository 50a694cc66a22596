package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *ValidationError
		expected string
	}{
		{
			name: "should report a single error directly",
			build: func() *ValidationError {
				ve := NewValidationError()
				ve.AddRequiredError("description")
				return ve
			},
			expected: "validation error for field 'description': description is required",
		},
		{
			name: "should report generic message when empty",
			build: func() *ValidationError {
				return NewValidationError()
			},
			expected: "validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.build().Error())
		})
	}
}

func TestValidationError_MultipleErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("description")
	ve.AddInvalidValueError("task_id", -1, "must be a positive integer")

	assert.True(t, ve.HasErrors())
	assert.Len(t, ve.Errors, 2)
	assert.Contains(t, ve.Error(), "multiple validation errors")
	assert.Contains(t, ve.GetUserFriendlyMessage(), "Multiple validation errors occurred")
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("description")

	assert.True(t, IsValidationError(ve))
	assert.False(t, IsValidationError(assert.AnError))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidLengthError("description", "x", 1, 500)

	assert.Equal(t, "description must be between 1 and 500 characters long", ve.GetUserFriendlyMessage())
}
