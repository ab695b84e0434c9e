package domain

// Task is a unit of tracked work. The ID is assigned by the store that owns
// the record and never changes afterwards.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskFields holds the caller-supplied part of a task. It is the input for
// both creating and replacing a task; the ID is never part of it.
type TaskFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// NewTask combines a store-assigned id with caller-supplied fields.
func NewTask(id int64, fields TaskFields) Task {
	return Task{
		ID:          id,
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
	}
}

// Fields returns the mutable part of the task.
func (t Task) Fields() TaskFields {
	return TaskFields{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
	}
}

// Validate checks field presence. Status is a free-form label and any value,
// including the empty string, is accepted.
func (f TaskFields) Validate() error {
	if f.Title == "" {
		return NewValidationError("title", "is required", ErrValidation)
	}
	return nil
}
