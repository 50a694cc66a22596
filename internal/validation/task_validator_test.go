package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateDescription(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		description string
		wantErr     bool
		errType     ValidationErrorType
	}{
		{
			name:        "should accept a normal description",
			description: "buy milk",
		},
		{
			name:        "should accept a single character",
			description: "x",
		},
		{
			name:        "should accept non-ASCII text",
			description: "买牛奶 and susu",
		},
		{
			name:        "should reject empty description",
			description: "",
			wantErr:     true,
			errType:     ErrorTypeRequired,
		},
		{
			name:        "should reject whitespace-only description",
			description: "   \t ",
			wantErr:     true,
			errType:     ErrorTypeRequired,
		},
		{
			name:        "should reject over-long description",
			description: strings.Repeat("a", 501),
			wantErr:     true,
			errType:     ErrorTypeInvalidLength,
		},
		{
			name:        "should reject embedded control characters",
			description: "buy\x00milk",
			wantErr:     true,
			errType:     ErrorTypeInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDescription(tt.description)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.errType, validationErr.Errors[0].Type)
		})
	}
}

func TestTaskValidator_ValidateTaskForUpdate(t *testing.T) {
	validator := NewTaskValidator()
	empty := ""
	valid := "new description"
	tooLong := strings.Repeat("b", 600)

	tests := []struct {
		name        string
		id          int64
		description *string
		wantErr     bool
	}{
		{
			name:        "should accept valid id with new description",
			id:          1,
			description: &valid,
		},
		{
			name:        "should accept nil description as leave-unchanged",
			id:          2,
			description: nil,
		},
		{
			name:        "should accept empty description as leave-unchanged",
			id:          3,
			description: &empty,
		},
		{
			name:    "should reject non-positive id",
			id:      0,
			wantErr: true,
		},
		{
			name:        "should reject over-long description",
			id:          4,
			description: &tooLong,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskForUpdate(tt.id, tt.description)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskID(1))
	assert.Error(t, validator.ValidateTaskID(0))
	assert.Error(t, validator.ValidateTaskID(-5))
}
