package service

import (
	"errors"
	"fmt"

	"github.com/belli/taskify/internal/domain"
	"github.com/belli/taskify/internal/store"
)

// Sentinel errors returned by TaskService. Callers check them with errors.Is;
// the API layer maps them to HTTP status codes.
var (
	// ErrTaskNotFound indicates that no task has the requested id.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")
)

// TaskServiceError wraps unexpected errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "update_task").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError translates err for callers of the service. Not-found
// conditions become ErrTaskNotFound and validation errors pass through
// unchanged; anything else is wrapped in a TaskServiceError.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	if errors.Is(err, domain.ErrValidation) {
		return err
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
