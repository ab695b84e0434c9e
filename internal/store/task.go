package store

import (
	"context"

	"github.com/belli/taskify/internal/domain"
)

// TaskStore defines the interface for task record storage.
// Implementations must be safe for concurrent use by multiple goroutines.
// Records are exchanged by value, so callers never hold a reference into
// store-owned state.
type TaskStore interface {
	// Create assigns the next id, stores a task built from fields and returns
	// a copy of it. The id sequence advances even if the result is discarded.
	Create(ctx context.Context, fields domain.TaskFields) domain.Task

	// GetByID retrieves the task with the given id.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (domain.Task, error)

	// GetAll returns a snapshot of every stored task. Changes made after the
	// call returns are not reflected. Order is not part of the contract.
	GetAll(ctx context.Context) []domain.Task

	// Update replaces title, description and status of an existing task and
	// returns the new value. Empty fields overwrite stored ones.
	// Returns ErrTaskNotFound, without mutating anything, if the task does not exist.
	Update(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error)

	// Delete removes the task with the given id. Deleting an id that is not
	// present is a no-op.
	Delete(ctx context.Context, id int64)
}
