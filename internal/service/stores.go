package service

import (
	"context"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

// The services depend on narrow store interfaces rather than the concrete
// repository types so the ownership and aggregation logic can be exercised
// against in-memory doubles. The repository package satisfies all three.

// UserStore persists user identity records.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// ProjectStore persists projects, with all single-project reads scoped to the
// owner in one compound lookup.
type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.Project, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Project, error)
	Delete(ctx context.Context, id int64) error
}

// TaskStore persists tasks, with all single-task reads scoped to the project
// in one compound lookup and both aggregate counts read in one snapshot.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByIDAndProject(ctx context.Context, id, projectID int64) (*model.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) error
	Delete(ctx context.Context, id int64) error
	CountByProject(ctx context.Context, projectID int64) (total, completed int, err error)
}
