package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// HandleCreateProject handles POST /api/projects requests.
func (h *ProjectHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.CreateProject(r.Context(), email, req)
	if err != nil {
		writeResourceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListProjects handles GET /api/projects requests.
func (h *ProjectHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projects, err := h.service.ListProjects(r.Context(), email)
	if err != nil {
		writeResourceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// HandleGetProject handles GET /api/projects/{project_id} requests.
func (h *ProjectHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projectID, ok := parseID(w, r, "project_id")
	if !ok {
		return
	}

	resp, err := h.service.GetProject(r.Context(), email, projectID)
	if err != nil {
		writeResourceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteProject handles DELETE /api/projects/{project_id} requests.
func (h *ProjectHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.CallerEmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projectID, ok := parseID(w, r, "project_id")
	if !ok {
		return
	}

	if err := h.service.DeleteProject(r.Context(), email, projectID); err != nil {
		writeResourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeResourceError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

// parseID parses a numeric URL parameter, writing a 400 response itself when
// the value is not a positive integer.
func parseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid "+param))
		return 0, false
	}
	return id, true
}
