package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/activity"
	client "github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/ent/schema"
)

// ErrClientNotFound is returned when the client doesn't exist.
var ErrClientNotFound = errors.New("client not found")

// Service recomputes client health scores. Recomputation is explicit
// (on demand, after milestone mutations, and nightly); a stale score
// between recomputes is acceptable.
type Service struct {
	db         *ent.Client
	weights    Weights
	thresholds Thresholds
}

// NewService creates a new health service.
func NewService(db *ent.Client, weights Weights, thresholds Thresholds) *Service {
	return &Service{db: db, weights: weights, thresholds: thresholds}
}

// Thresholds exposes the configured thresholds for read-side status derivation.
func (s *Service) Thresholds() Thresholds {
	return s.thresholds
}

// Result is the outcome of a recompute.
type Result struct {
	ClientID  int                            `json:"client_id"`
	Score     int                            `json:"score"`
	Status    string                         `json:"status"`
	Factors   map[string]schema.HealthFactor `json:"factors"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

// Recompute derives the four sub-scores from persisted state, computes
// the weighted score and writes it back in a single update.
func (s *Service) Recompute(ctx context.Context, clientID int) (*Result, error) {
	cl, err := s.db.Creator.Query().Where(client.ID(clientID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	now := time.Now()

	subs, err := s.deriveSubScores(ctx, cl, now)
	if err != nil {
		return nil, err
	}

	score := Score(s.weights, subs)
	factors := map[string]schema.HealthFactor{
		FactorEmailActivity:       {Score: subs.EmailActivity, Weight: s.weights.Email},
		FactorMilestoneCompletion: {Score: subs.MilestoneCompletion, Weight: s.weights.Milestone},
		FactorActivityRecency:     {Score: subs.ActivityRecency, Weight: s.weights.Activity},
		FactorProjectProgress:     {Score: subs.ProjectProgress, Weight: s.weights.Progress},
	}

	_, err = cl.Update().
		SetHealthScore(score).
		SetHealthFactors(factors).
		SetHealthUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist health score: %w", err)
	}

	return &Result{
		ClientID:  clientID,
		Score:     score,
		Status:    StatusFor(s.thresholds, score),
		Factors:   factors,
		UpdatedAt: now,
	}, nil
}

// RecomputeAll recomputes every client's health score. Used by the
// nightly cron job; individual failures are counted, not fatal.
func (s *Service) RecomputeAll(ctx context.Context) (updated, failed int, err error) {
	ids, err := s.db.Creator.Query().IDs(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	for _, id := range ids {
		if _, err := s.Recompute(ctx, id); err != nil {
			failed++
			continue
		}
		updated++
	}

	return updated, failed, nil
}

func (s *Service) deriveSubScores(ctx context.Context, cl *ent.Creator, now time.Time) (SubScores, error) {
	var subs SubScores

	// Email activity: volume of email touches in the last 30 days.
	emails, err := s.db.Activity.Query().
		Where(
			activity.ClientID(cl.ID),
			activity.TypeEQ(activity.TypeEmail),
			activity.CreatedAtGTE(now.AddDate(0, 0, -30)),
		).
		Count(ctx)
	if err != nil {
		return subs, fmt.Errorf("failed to count email activity: %w", err)
	}
	subs.EmailActivity = clamp(emails * 20)

	// Milestone completion ratio. A client with no milestones yet gets
	// a neutral 50 so a fresh client isn't immediately red.
	total, err := s.db.Milestone.Query().
		Where(milestone.ClientID(cl.ID)).
		Count(ctx)
	if err != nil {
		return subs, fmt.Errorf("failed to count milestones: %w", err)
	}
	if total == 0 {
		subs.MilestoneCompletion = 50
	} else {
		completed, err := s.db.Milestone.Query().
			Where(
				milestone.ClientID(cl.ID),
				milestone.StatusEQ(milestone.StatusCompleted),
			).
			Count(ctx)
		if err != nil {
			return subs, fmt.Errorf("failed to count completed milestones: %w", err)
		}
		subs.MilestoneCompletion = clamp(completed * 100 / total)
	}

	// Activity recency: decays with days since the most recent activity.
	last, err := s.db.Activity.Query().
		Where(activity.ClientID(cl.ID)).
		Order(ent.Desc(activity.FieldCreatedAt)).
		First(ctx)
	switch {
	case err == nil:
		subs.ActivityRecency = recencyScore(now.Sub(last.CreatedAt))
	case ent.IsNotFound(err):
		subs.ActivityRecency = 0
	default:
		return subs, fmt.Errorf("failed to fetch latest activity: %w", err)
	}

	// Project progress mirrors the client's journey progress.
	subs.ProjectProgress = cl.JourneyProgress

	return subs, nil
}

func recencyScore(age time.Duration) int {
	days := int(age.Hours() / 24)
	switch {
	case days <= 1:
		return 100
	case days <= 3:
		return 90
	case days <= 7:
		return 75
	case days <= 14:
		return 50
	case days <= 30:
		return 25
	default:
		return 0
	}
}
