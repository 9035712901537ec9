package models

import "time"

// HealthFactorInfo is one sub-score entry in a client's health breakdown.
type HealthFactorInfo struct {
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

// ClientResponse represents a single client in API responses.
// HealthStatus is computed from HealthScore via the configured
// thresholds on every read; it is never stored.
type ClientResponse struct {
	ID              int                         `json:"id"`
	Name            string                      `json:"name"`
	Email           string                      `json:"email,omitempty"`
	Company         string                      `json:"company,omitempty"`
	JourneyStage    string                      `json:"journey_stage"`
	JourneyProgress int                         `json:"journey_progress"`
	HealthScore     int                         `json:"health_score"`
	HealthStatus    string                      `json:"health_status"`
	HealthFactors   map[string]HealthFactorInfo `json:"health_factors,omitempty"`
	HealthUpdatedAt *time.Time                  `json:"health_updated_at,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Data       []ClientResponse `json:"data"`
	Pagination PaginationInfo   `json:"pagination"`
}

// ClientUpdateRequest patches mutable client fields.
type ClientUpdateRequest struct {
	JourneyStage    *string `json:"journey_stage,omitempty" validate:"omitempty,oneof=foundation prep launch growth_expansion"`
	JourneyProgress *int    `json:"journey_progress,omitempty" validate:"omitempty,min=0,max=100"`
}

// MilestoneCreateRequest creates a milestone for a client.
type MilestoneCreateRequest struct {
	Title   string     `json:"title" validate:"required,min=2,max=300"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// MilestoneStatusRequest patches a milestone's status.
type MilestoneStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=not_started in_progress completed"`
}

// MilestoneResponse represents a milestone in API responses.
type MilestoneResponse struct {
	ID          int        `json:"id"`
	ClientID    int        `json:"client_id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ActivityCreateRequest records an activity against a client.
type ActivityCreateRequest struct {
	Type        string `json:"type" validate:"required,oneof=email call meeting note system"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
}

// ActivityResponse represents an activity log entry.
type ActivityResponse struct {
	ID          int       `json:"id"`
	ClientID    int       `json:"client_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
