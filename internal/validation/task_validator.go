package validation

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateDescription validates a task description for creation or update
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed, 1, 500)
	}

	if !tv.validator.IsFreeOfControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("description", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates a task for creation
func (tv *TaskValidator) ValidateTaskForCreation(description string) error {
	return tv.ValidateDescription(description)
}

// ValidateTaskForUpdate validates a partial task update.
// A nil or empty-after-trim description means "leave unchanged" and is not an error.
func (tv *TaskValidator) ValidateTaskForUpdate(id int64, description *string) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(id) {
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
	}

	if description != nil && tv.validator.IsNonEmptyString(*description) {
		if descErr := tv.ValidateDescription(*description); descErr != nil {
			if descValidationErr, ok := descErr.(*ValidationError); ok {
				validationError.Errors = append(validationError.Errors, descValidationErr.Errors...)
			}
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID on its own
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(id) {
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}

	return nil
}
