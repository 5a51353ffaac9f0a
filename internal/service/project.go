package service

import (
	"context"
	"errors"
	"math"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be 100 characters or fewer")
	ErrDescriptionTooLong = errors.New("description must be 500 characters or fewer")
)

// ProjectService handles project CRUD and derived task statistics.
type ProjectService struct {
	resolver *OwnershipResolver
	projects ProjectStore
	tasks    TaskStore
}

// NewProjectService creates a new ProjectService.
func NewProjectService(resolver *OwnershipResolver, projects ProjectStore, tasks TaskStore) *ProjectService {
	return &ProjectService{
		resolver: resolver,
		projects: projects,
		tasks:    tasks,
	}
}

// CreateProject creates a project owned by the caller.
func (s *ProjectService) CreateProject(ctx context.Context, callerEmail string, req model.ProjectRequest) (model.ProjectResponse, error) {
	if err := validateTitleAndDescription(req.Title, req.Description); err != nil {
		return model.ProjectResponse{}, err
	}

	user, err := s.resolver.resolveCaller(ctx, callerEmail)
	if err != nil {
		return model.ProjectResponse{}, err
	}

	project := &model.Project{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     user.ID,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return model.ProjectResponse{}, err
	}

	return s.summarize(ctx, project)
}

// ListProjects returns all of the caller's projects with their statistics.
func (s *ProjectService) ListProjects(ctx context.Context, callerEmail string) ([]model.ProjectResponse, error) {
	user, err := s.resolver.resolveCaller(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp, err := s.summarize(ctx, &projects[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// GetProject returns one of the caller's projects with its statistics.
func (s *ProjectService) GetProject(ctx context.Context, callerEmail string, projectID int64) (model.ProjectResponse, error) {
	project, err := s.resolver.ResolveProject(ctx, callerEmail, projectID)
	if err != nil {
		return model.ProjectResponse{}, err
	}

	return s.summarize(ctx, project)
}

// DeleteProject removes one of the caller's projects along with all of its
// tasks, keeping the ownership chain free of orphans.
func (s *ProjectService) DeleteProject(ctx context.Context, callerEmail string, projectID int64) error {
	project, err := s.resolver.ResolveProject(ctx, callerEmail, projectID)
	if err != nil {
		return err
	}

	return s.projects.Delete(ctx, project.ID)
}

// summarize computes the derived statistics for a project. Both counts come
// from a single store snapshot; when the store reports completed > total
// anyway (a snapshot the store could not make consistent), the numbers are
// used as read rather than asserted against.
func (s *ProjectService) summarize(ctx context.Context, project *model.Project) (model.ProjectResponse, error) {
	total, completed, err := s.tasks.CountByProject(ctx, project.ID)
	if err != nil {
		return model.ProjectResponse{}, err
	}

	var progress float64
	if total > 0 {
		progress = round2(float64(completed) * 100.0 / float64(total))
	}

	return model.ProjectResponse{
		ID:                 project.ID,
		Title:              project.Title,
		Description:        project.Description,
		CreatedAt:          project.CreatedAt,
		TotalTasks:         total,
		CompletedTasks:     completed,
		ProgressPercentage: progress,
	}, nil
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func validateTitleAndDescription(title, description string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > 100 {
		return ErrTitleTooLong
	}
	if len(description) > 500 {
		return ErrDescriptionTooLong
	}
	return nil
}
