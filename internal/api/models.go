package api

import "github.com/belli/taskify/internal/domain"

// TaskRequest defines the payload for creating or replacing a task.
// An id in the body is ignored; ids are assigned by the server.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Fields converts the request into domain input.
func (r TaskRequest) Fields() domain.TaskFields {
	return domain.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
	}
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}
	return resp
}
