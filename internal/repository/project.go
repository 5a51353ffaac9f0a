package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository handles project persistence operations.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project and sets the generated ID on the project struct.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	query := `INSERT INTO projects (title, description, owner_id) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, project.Title, project.Description, project.OwnerID)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	project.ID = id
	return nil
}

// GetByIDAndOwner retrieves a project by id scoped to its owner in a single
// compound lookup. A project owned by someone else and a project that does not
// exist are both ErrProjectNotFound.
func (r *ProjectRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.Project, error) {
	query := `SELECT id, title, description, owner_id, created_at
		FROM projects WHERE id = ? AND owner_id = ?`

	project := &model.Project{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&project.ID, &project.Title, &project.Description, &project.OwnerID, &project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return project, nil
}

// ListByOwner retrieves all projects owned by a user, newest first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Project, error) {
	query := `SELECT id, title, description, owner_id, created_at
		FROM projects WHERE owner_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.OwnerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// Delete removes a project and all of its tasks in one transaction. The
// schema's ON DELETE CASCADE covers the same invariant; the explicit task
// delete keeps the behavior independent of how the tables were created.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}

	return tx.Commit()
}
