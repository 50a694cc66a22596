package validation

import (
	"strings"
	"unicode"

	"todo-chat/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks if a task description length is within configured limits
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, v.descriptionMinLength(), v.descriptionMaxLength())
}

// IsValidMessageLength checks if a chat message length is within configured limits.
// Empty messages are allowed; the interpretation service answers them conversationally.
func (v *Validator) IsValidMessageLength(message string) bool {
	return len(message) <= v.messageMaxLength()
}

// IsFreeOfControlCharacters checks that a string carries no control characters.
// Descriptions are single-line text in any language, so only control runes are rejected.
func (v *Validator) IsFreeOfControlCharacters(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) descriptionMinLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMinLength
	}
	return 1
}

func (v *Validator) descriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 500
}

func (v *Validator) messageMaxLength() int {
	if v.config != nil {
		return v.config.Validation.MessageMaxLength
	}
	return 4000
}
