package entities

import "time"

// ProjectStatus tracks where a project is in its delivery lifecycle.

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project groups estimates and invoices under a single job for a client.
type Project struct {
	ID          string        `json:"id"`
	WorkspaceID string        `json:"workspace_id"`
	ClientID    string        `json:"client_id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
