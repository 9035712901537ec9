package models

import "time"

// AnalyticsOverview is the CRM dashboard snapshot.
type AnalyticsOverview struct {
	LeadsByStage         map[string]int `json:"leads_by_stage"`
	LeadConversionRate   float64        `json:"lead_conversion_rate"`
	ClientsByJourney     map[string]int `json:"clients_by_journey"`
	HealthDistribution   map[string]int `json:"health_distribution"`
	AverageHealthScore   float64        `json:"average_health_score"`
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
	GeneratedAt          time.Time      `json:"generated_at"`
}

// MonthDocumentStats aggregates document lifecycle outcomes for one month.
type MonthDocumentStats struct {
	Month              int     `json:"month"`
	Generated          int     `json:"generated"`
	Approved           int     `json:"approved"`
	RevisionRequests   int     `json:"revision_requests"`
	ApprovalRate       float64 `json:"approval_rate"`
	AvgApprovalLatency float64 `json:"avg_approval_latency_hours"`
}

// DocumentPerformance is the document-performance analytics view.
type DocumentPerformance struct {
	Months      []MonthDocumentStats `json:"months"`
	GeneratedAt time.Time            `json:"generated_at"`
}
