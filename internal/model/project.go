package model

import "time"

// Project represents a project row. OwnerID never changes after creation.
type Project struct {
	ID          int64
	Title       string
	Description string
	OwnerID     int64
	CreatedAt   time.Time
}

// ProjectRequest represents a project creation request.
type ProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectResponse represents a project with its aggregated task statistics.
type ProjectResponse struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	TotalTasks         int       `json:"total_tasks"`
	CompletedTasks     int       `json:"completed_tasks"`
	ProgressPercentage float64   `json:"progress_percentage"`
}
