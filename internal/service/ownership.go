package service

import (
	"context"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

// ErrNotFound is the single resolution failure for the ownership chain.
// "Does not exist" and "exists but belongs to another user" are deliberately
// indistinguishable so resource ids cannot be probed across tenants.
var ErrNotFound = errors.New("resource not found")

// OwnershipResolver authorizes access along the User → Project → Task chain.
// Every project and task read or mutation goes through it; nothing else in
// the codebase fetches a project or task by bare id.
type OwnershipResolver struct {
	users    UserStore
	projects ProjectStore
	tasks    TaskStore
}

// NewOwnershipResolver creates a new OwnershipResolver.
func NewOwnershipResolver(users UserStore, projects ProjectStore, tasks TaskStore) *OwnershipResolver {
	return &OwnershipResolver{users: users, projects: projects, tasks: tasks}
}

// ResolveProject returns the project only if the caller owns it. The project
// fetch is one compound (id, owner) lookup, never fetch-then-compare, so no
// code path can observe "exists but not yours". A caller email with no user
// record (a stale token for a deleted account) is also ErrNotFound.
func (r *OwnershipResolver) ResolveProject(ctx context.Context, callerEmail string, projectID int64) (*model.Project, error) {
	user, err := r.users.GetByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	project, err := r.projects.GetByIDAndOwner(ctx, projectID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return project, nil
}

// ResolveTask returns the project and task only if the caller owns the
// project and the task belongs to it. The task fetch is a compound
// (id, project) lookup, so a task id guessed from another tenant's project is
// indistinguishable from a task that does not exist.
func (r *OwnershipResolver) ResolveTask(ctx context.Context, callerEmail string, projectID, taskID int64) (*model.Project, *model.Task, error) {
	project, err := r.ResolveProject(ctx, callerEmail, projectID)
	if err != nil {
		return nil, nil, err
	}

	task, err := r.tasks.GetByIDAndProject(ctx, taskID, project.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	return project, task, nil
}

// resolveCaller maps a caller email to its user record, collapsing an unknown
// email to ErrNotFound. Used by operations scoped to the caller rather than
// to a specific resource (create project, list projects).
func (r *OwnershipResolver) resolveCaller(ctx context.Context, callerEmail string) (*model.User, error) {
	user, err := r.users.GetByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
