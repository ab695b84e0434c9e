package service

import (
	"context"

	"github.com/belli/taskify/internal/domain"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	CreateFn  func(ctx context.Context, fields domain.TaskFields) domain.Task
	GetByIDFn func(ctx context.Context, id int64) (domain.Task, error)
	GetAllFn  func(ctx context.Context) []domain.Task
	UpdateFn  func(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error)
	DeleteFn  func(ctx context.Context, id int64)

	CreateCalls int
	UpdateCalls int
	DeletedIDs  []int64
}

func (m *MockTaskStore) Create(ctx context.Context, fields domain.TaskFields) domain.Task {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, fields)
	}
	return domain.NewTask(1, fields)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return domain.Task{}, nil
}

func (m *MockTaskStore) GetAll(ctx context.Context) []domain.Task {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil
}

func (m *MockTaskStore) Update(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error) {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, fields)
	}
	return domain.NewTask(id, fields), nil
}

func (m *MockTaskStore) Delete(ctx context.Context, id int64) {
	m.DeletedIDs = append(m.DeletedIDs, id)
	if m.DeleteFn != nil {
		m.DeleteFn(ctx, id)
	}
}
