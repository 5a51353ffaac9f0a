package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and sets the generated ID on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (title, description, due_date, status, project_id) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.DueDate, string(task.Status), task.ProjectID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetByIDAndProject retrieves a task by id scoped to its project in a single
// compound lookup. A task living in a different project and a task that does
// not exist are both ErrTaskNotFound.
func (r *TaskRepository) GetByIDAndProject(ctx context.Context, id, projectID int64) (*model.Task, error) {
	query := `SELECT id, title, description, due_date, status, project_id, created_at
		FROM tasks WHERE id = ? AND project_id = ?`

	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, query, id, projectID).Scan(
		&task.ID, &task.Title, &task.Description, &task.DueDate,
		&task.Status, &task.ProjectID, &task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// ListByProject retrieves all tasks in a project, oldest first.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	query := `SELECT id, title, description, due_date, status, project_id, created_at
		FROM tasks WHERE project_id = ? ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.DueDate,
			&t.Status, &t.ProjectID, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// UpdateStatus sets a task's status. The single UPDATE is atomic; concurrent
// writers race but can never leave a corrupted intermediate state.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) error {
	query := `UPDATE tasks SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return err
	}

	// RowsAffected is 0 when the status already matches on MySQL, so a
	// no-op update (idempotent complete) is not an error here.
	if _, err := result.RowsAffected(); err != nil {
		return err
	}

	return nil
}

// Delete removes a task by id.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// CountByProject returns the total and completed task counts for a project.
// Both counts come from one SELECT, so they reflect a single snapshot and
// completed can never exceed total.
func (r *TaskRepository) CountByProject(ctx context.Context, projectID int64) (total, completed int, err error) {
	query := `SELECT COUNT(*), COALESCE(SUM(status = 'COMPLETED'), 0)
		FROM tasks WHERE project_id = ?`

	err = r.db.QueryRowContext(ctx, query, projectID).Scan(&total, &completed)
	return total, completed, err
}
