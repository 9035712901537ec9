package models

import "time"

// DocumentResponse represents one onboarding document.
type DocumentResponse struct {
	ID              int        `json:"id"`
	Slot            int        `json:"slot"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	RevisionNotes   string     `json:"revision_notes,omitempty"`
	StatusChangedAt time.Time  `json:"status_changed_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
}

// MonthResponse represents one program month of the onboarding kit.
// Locked and Complete are derived, never stored.
type MonthResponse struct {
	Month       int                `json:"month"`
	Locked      bool               `json:"locked"`
	Generated   bool               `json:"generated"`
	GeneratedAt *time.Time         `json:"generated_at,omitempty"`
	Complete    bool               `json:"complete"`
	Documents   []DocumentResponse `json:"documents"`
}

// KitResponse is the full 8-month onboarding view for a client.
type KitResponse struct {
	ClientID     int             `json:"client_id"`
	CurrentMonth int             `json:"current_month"`
	Months       []MonthResponse `json:"months"`
}

// RevisionRequest carries reviewer notes for a revision request.
// Empty or whitespace-only notes are rejected server-side.
type RevisionRequest struct {
	Notes string `json:"notes" validate:"required"`
}
