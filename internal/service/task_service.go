package service

import (
	"context"
	"log/slog"

	"github.com/belli/taskify/internal/domain"
	"github.com/belli/taskify/internal/platform/logger"
	"github.com/belli/taskify/internal/store"
)

// TaskService provides task-related operations to the delivery layer.
type TaskService interface {
	// CreateTask validates fields and stores a new task.
	CreateTask(ctx context.Context, fields domain.TaskFields) (domain.Task, error)

	// GetTask retrieves a task by id. Returns ErrTaskNotFound if absent.
	GetTask(ctx context.Context, id int64) (domain.Task, error)

	// ListTasks returns a snapshot of all tasks. The result is never nil.
	ListTasks(ctx context.Context) []domain.Task

	// UpdateTask validates fields and replaces the task's title, description
	// and status. Returns ErrTaskNotFound if absent.
	UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error)

	// DeleteTask removes a task. Deleting a missing task succeeds.
	DeleteTask(ctx context.Context, id int64)
}

type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService backed by the given store.
func NewTaskService(tasks store.TaskStore, log *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		return nil, domain.NewValidationError("logger", "cannot be nil", domain.ErrValidation)
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: log.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, fields domain.TaskFields) (domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := fields.Validate(); err != nil {
		log.Debug("rejected task creation", slog.String("reason", err.Error()))
		return domain.Task{}, err
	}

	task := s.tasks.Create(ctx, fields)
	log.Info("task created", slog.Int64("task_id", task.ID), slog.String("status", task.Status))
	return task, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) []domain.Task {
	tasks := s.tasks.GetAll(ctx)
	if tasks == nil {
		return []domain.Task{}
	}
	return tasks
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := fields.Validate(); err != nil {
		log.Debug("rejected task update", slog.Int64("task_id", id), slog.String("reason", err.Error()))
		return domain.Task{}, err
	}

	task, err := s.tasks.Update(ctx, id, fields)
	if err != nil {
		return domain.Task{}, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", slog.Int64("task_id", task.ID), slog.String("status", task.Status))
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) {
	s.tasks.Delete(ctx, id)
	logger.FromContextOrDefault(ctx, s.logger).Info("task deleted", slog.Int64("task_id", id))
}
