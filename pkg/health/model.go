package health

import "math"

// Factor names used in health breakdowns.
const (
	FactorEmailActivity       = "email_activity"
	FactorMilestoneCompletion = "milestone_completion"
	FactorActivityRecency     = "activity_recency"
	FactorProjectProgress     = "project_progress"
)

// Status values derived from the score.
const (
	StatusGreen  = "green"
	StatusYellow = "yellow"
	StatusRed    = "red"
)

// Weights is the configured weight vector. It must sum to 1.0
// (validated at startup by config.Validate).
type Weights struct {
	Email     float64
	Milestone float64
	Activity  float64
	Progress  float64
}

// Thresholds maps a score to a status. GreenMin must be greater than
// YellowMin (validated at startup).
type Thresholds struct {
	GreenMin  int
	YellowMin int
}

// SubScores holds the four pre-normalized inputs, each in [0,100].
type SubScores struct {
	EmailActivity       int
	MilestoneCompletion int
	ActivityRecency     int
	ProjectProgress     int
}

// Score computes round(Σ weight_i * subscore_i).
func Score(w Weights, s SubScores) int {
	sum := w.Email*float64(clamp(s.EmailActivity)) +
		w.Milestone*float64(clamp(s.MilestoneCompletion)) +
		w.Activity*float64(clamp(s.ActivityRecency)) +
		w.Progress*float64(clamp(s.ProjectProgress))
	return int(math.Round(sum))
}

// StatusFor maps a score to green/yellow/red via the configured thresholds.
func StatusFor(t Thresholds, score int) string {
	switch {
	case score >= t.GreenMin:
		return StatusGreen
	case score >= t.YellowMin:
		return StatusYellow
	default:
		return StatusRed
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
