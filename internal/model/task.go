package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "PENDING"
	StatusCompleted TaskStatus = "COMPLETED"
)

// Toggled returns the opposite status.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Task represents a task row. ProjectID never changes after creation; a task's
// effective owner is the owner of its project.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	Status      TaskStatus
	ProjectID   int64
	CreatedAt   time.Time
}

// TaskRequest represents a task creation request. DueDate, when present, is a
// yyyy-MM-dd calendar date.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     string     `json:"due_date,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
