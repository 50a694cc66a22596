package domain

import "time"

// Task represents a to-do item in the domain model.
type Task struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID > 0 && t.Description != "" && !t.UpdatedAt.Before(t.CreatedAt)
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}

// TaskUpdate carries a partial update for a task. Nil fields are left unchanged;
// Completed is applied whenever non-nil, including an explicit false.
type TaskUpdate struct {
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the update changes nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Description == nil && u.Completed == nil
}

// Now returns the store's canonical timestamp: UTC at second precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
