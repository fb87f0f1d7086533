package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending    = "pending"
	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Deadline    time.Time `json:"deadline"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTaskRequest carries the raw request body. Deadline stays a string
// until validation parses it, so both date-only and RFC 3339 inputs work.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// UpdateTaskRequest is a partial update. Empty fields are treated as "not
// provided" and leave the stored value unchanged, which also means a field
// cannot be cleared to empty through this endpoint. Known limitation carried
// over from the original API.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}
