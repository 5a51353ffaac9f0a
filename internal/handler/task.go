package handler

import (
	"net/http"

	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleCreateTask handles POST /api/projects/{project_id}/tasks requests.
func (h *TaskHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	email, projectID, ok := taskRouteParams(w, r)
	if !ok {
		return
	}

	var req model.TaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.CreateTask(r.Context(), email, projectID, req)
	if err != nil {
		writeResourceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListTasks handles GET /api/projects/{project_id}/tasks requests.
func (h *TaskHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	email, projectID, ok := taskRouteParams(w, r)
	if !ok {
		return
	}

	tasks, err := h.service.ListTasks(r.Context(), email, projectID)
	if err != nil {
		writeResourceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// HandleCompleteTask handles PUT /api/projects/{project_id}/tasks/{task_id}/complete requests.
func (h *TaskHandler) HandleCompleteTask(w http.ResponseWriter, r *http.Request) {
	email, projectID, ok := taskRouteParams(w, r)
	if !ok {
		return
	}
	taskID, ok := parseID(w, r, "task_id")
	if !ok {
		return
	}

	resp, err := h.service.CompleteTask(r.Context(), email, projectID, taskID)
	if err != nil {
		writeResourceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleToggleTask handles PUT /api/projects/{project_id}/tasks/{task_id}/toggle requests.
func (h *TaskHandler) HandleToggleTask(w http.ResponseWriter, r *http.Request) {
	email, projectID, ok := taskRouteParams(w, r)
	if !ok {
		return
	}
	taskID, ok := parseID(w, r, "task_id")
	if !ok {
		return
	}

	resp, err := h.service.ToggleTask(r.Context(), email, projectID, taskID)
	if err != nil {
		writeResourceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteTask handles DELETE /api/projects/{project_id}/tasks/{task_id} requests.
func (h *TaskHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	email, projectID, ok := taskRouteParams(w, r)
	if !ok {
		return
	}
	taskID, ok := parseID(w, r, "task_id")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(r.Context(), email, projectID, taskID); err != nil {
		writeResourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskRouteParams extracts the caller email and project id shared by every
// task route, writing the error response itself on failure.
func taskRouteParams(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	email, ok := middleware.CallerEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return "", 0, false
	}

	projectID, ok := parseID(w, r, "project_id")
	if !ok {
		return "", 0, false
	}

	return email, projectID, true
}
