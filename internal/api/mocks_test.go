package api

import (
	"context"

	"github.com/belli/taskify/internal/domain"
)

// MockTaskService is a mock implementation of service.TaskService for testing.
type MockTaskService struct {
	CreateTaskFn func(ctx context.Context, fields domain.TaskFields) (domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (domain.Task, error)
	ListTasksFn  func(ctx context.Context) []domain.Task
	UpdateTaskFn func(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64)

	CreateCalls []domain.TaskFields
	UpdateCalls []int64
	DeleteCalls []int64
}

// CreateTask implements service.TaskService.
func (m *MockTaskService) CreateTask(ctx context.Context, fields domain.TaskFields) (domain.Task, error) {
	m.CreateCalls = append(m.CreateCalls, fields)
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, fields)
	}
	return domain.Task{}, nil
}

// GetTask implements service.TaskService.
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return domain.Task{}, nil
}

// ListTasks implements service.TaskService.
func (m *MockTaskService) ListTasks(ctx context.Context) []domain.Task {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return []domain.Task{}
}

// UpdateTask implements service.TaskService.
func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error) {
	m.UpdateCalls = append(m.UpdateCalls, id)
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, fields)
	}
	return domain.Task{}, nil
}

// DeleteTask implements service.TaskService.
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteTaskFn != nil {
		m.DeleteTaskFn(ctx, id)
	}
}
