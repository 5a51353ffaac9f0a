package service

import (
	"context"
	"errors"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrInvalidDueDate = errors.New("due date must be a yyyy-MM-dd date")

// dueDateLayout is the wire format for task due dates.
const dueDateLayout = "2006-01-02"

// TaskService handles the task lifecycle. Every operation goes through the
// ownership resolver first and reports any resolution failure as ErrNotFound;
// no task is ever fetched or mutated outside a resolved project.
type TaskService struct {
	resolver *OwnershipResolver
	tasks    TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(resolver *OwnershipResolver, tasks TaskStore) *TaskService {
	return &TaskService{resolver: resolver, tasks: tasks}
}

// CreateTask creates a task in one of the caller's projects. New tasks start
// PENDING. The due date, when present, must parse as yyyy-MM-dd; whether it
// lies in the past is the boundary layer's check, not ours.
func (s *TaskService) CreateTask(ctx context.Context, callerEmail string, projectID int64, req model.TaskRequest) (model.TaskResponse, error) {
	if err := validateTitleAndDescription(req.Title, req.Description); err != nil {
		return model.TaskResponse{}, err
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			return model.TaskResponse{}, ErrInvalidDueDate
		}
		dueDate = &parsed
	}

	project, err := s.resolver.ResolveProject(ctx, callerEmail, projectID)
	if err != nil {
		return model.TaskResponse{}, err
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      model.StatusPending,
		ProjectID:   project.ID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	return taskToResponse(task), nil
}

// ListTasks returns all tasks in one of the caller's projects.
func (s *TaskService) ListTasks(ctx context.Context, callerEmail string, projectID int64) ([]model.TaskResponse, error) {
	project, err := s.resolver.ResolveProject(ctx, callerEmail, projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = taskToResponse(&tasks[i])
	}

	return responses, nil
}

// CompleteTask marks a task COMPLETED. Completing an already-completed task
// is a no-op, not an error.
func (s *TaskService) CompleteTask(ctx context.Context, callerEmail string, projectID, taskID int64) (model.TaskResponse, error) {
	_, task, err := s.resolver.ResolveTask(ctx, callerEmail, projectID, taskID)
	if err != nil {
		return model.TaskResponse{}, err
	}

	if err := s.tasks.UpdateStatus(ctx, task.ID, model.StatusCompleted); err != nil {
		return model.TaskResponse{}, err
	}

	task.Status = model.StatusCompleted
	return taskToResponse(task), nil
}

// ToggleTask flips a task between PENDING and COMPLETED.
func (s *TaskService) ToggleTask(ctx context.Context, callerEmail string, projectID, taskID int64) (model.TaskResponse, error) {
	_, task, err := s.resolver.ResolveTask(ctx, callerEmail, projectID, taskID)
	if err != nil {
		return model.TaskResponse{}, err
	}

	next := task.Status.Toggled()
	if err := s.tasks.UpdateStatus(ctx, task.ID, next); err != nil {
		return model.TaskResponse{}, err
	}

	task.Status = next
	return taskToResponse(task), nil
}

// DeleteTask removes a task from one of the caller's projects.
func (s *TaskService) DeleteTask(ctx context.Context, callerEmail string, projectID, taskID int64) error {
	_, task, err := s.resolver.ResolveTask(ctx, callerEmail, projectID, taskID)
	if err != nil {
		return err
	}

	return s.tasks.Delete(ctx, task.ID)
}

func taskToResponse(task *model.Task) model.TaskResponse {
	resp := model.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
	}
	if task.DueDate != nil {
		resp.DueDate = task.DueDate.Format(dueDateLayout)
	}
	return resp
}
