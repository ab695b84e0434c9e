package api

import (
	"log/slog"
	"net/http"

	"github.com/belli/taskify/internal/api/shared"
	"github.com/belli/taskify/internal/platform/logger"
	"github.com/belli/taskify/internal/redact"
	"github.com/belli/taskify/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks.
// It responds 201 with the new task and a Location header pointing at it.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Fields())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.Header().Set("Location", taskLocation(task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.taskService.ListTasks(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id}. The body replaces every mutable field.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.Fields())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id}. It responds 204 whether or not the
// task existed.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	h.taskService.DeleteTask(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid task id in path",
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (TaskRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return TaskRequest{}, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return TaskRequest{}, false
	}

	return req, true
}
