package models

import "time"

// LeadCreateRequest creates a new lead.
type LeadCreateRequest struct {
	Name    string            `json:"name" validate:"required,min=2,max=200"`
	Email   string            `json:"email" validate:"omitempty,email"`
	Company string            `json:"company" validate:"omitempty,max=200"`
	Source  string            `json:"source" validate:"omitempty,max=100"`
	Summary string            `json:"summary" validate:"omitempty,max=5000"`
	Answers map[string]string `json:"answers,omitempty"`
}

// LeadStageUpdateRequest moves a lead through the pipeline.
type LeadStageUpdateRequest struct {
	Stage  string `json:"stage" validate:"required,oneof=warm interested almost_onboarded onboarded rejected"`
	Reason string `json:"reason,omitempty" validate:"max=1000"`
}

// LeadResponse represents a single lead in API responses.
// FitScore and SentimentScore are nil until a successful analysis.
type LeadResponse struct {
	ID                        int               `json:"id"`
	Name                      string            `json:"name"`
	Email                     string            `json:"email,omitempty"`
	Company                   string            `json:"company,omitempty"`
	Source                    string            `json:"source,omitempty"`
	Summary                   string            `json:"summary,omitempty"`
	Answers                   map[string]string `json:"answers,omitempty"`
	Stage                     string            `json:"stage"`
	StageChangedAt            time.Time         `json:"stage_changed_at"`
	FitScore                  *int              `json:"fit_score"`
	SentimentScore            *float64          `json:"sentiment_score"`
	AISummary                 string            `json:"ai_summary,omitempty"`
	Strengths                 []string          `json:"strengths,omitempty"`
	Concerns                  []string          `json:"concerns,omitempty"`
	Recommendations           string            `json:"recommendations,omitempty"`
	EstimatedRevenuePotential string            `json:"estimated_revenue_potential,omitempty"`
	AnalyzedAt                *time.Time        `json:"analyzed_at,omitempty"`
	ConvertedClientID         *int              `json:"converted_client_id,omitempty"`
	CreatedAt                 time.Time         `json:"created_at"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Data       []LeadResponse `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// LeadStageHistoryResponse represents a stage change event.
type LeadStageHistoryResponse struct {
	ID        int       `json:"id"`
	LeadID    int       `json:"lead_id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	OldStage  *string   `json:"old_stage,omitempty"`
	NewStage  string    `json:"new_stage"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
