package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/application"
	entclient "github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/pkg/cache"
	"github.com/creatorbridge/api/pkg/health"
	"github.com/creatorbridge/api/pkg/models"
)

const (
	overviewCacheKey    = "analytics:overview"
	performanceCacheKey = "analytics:document-performance"
	cacheTTL            = 5 * time.Minute
)

// Service computes CRM analytics. Results are cached in Redis for five
// minutes; the cache is a best-effort layer and every failure falls
// through to a fresh computation.
type Service struct {
	db         *ent.Client
	cache      *cache.Client
	thresholds health.Thresholds
}

// NewService creates a new analytics service.
func NewService(db *ent.Client, cacheClient *cache.Client, thresholds health.Thresholds) *Service {
	return &Service{db: db, cache: cacheClient, thresholds: thresholds}
}

// Overview returns the dashboard snapshot.
func (s *Service) Overview(ctx context.Context) (*models.AnalyticsOverview, error) {
	var cached models.AnalyticsOverview
	if s.getCached(ctx, overviewCacheKey, &cached) {
		return &cached, nil
	}

	overview := &models.AnalyticsOverview{
		LeadsByStage:         make(map[string]int),
		ClientsByJourney:     make(map[string]int),
		HealthDistribution:   map[string]int{health.StatusGreen: 0, health.StatusYellow: 0, health.StatusRed: 0},
		ApplicationsByStatus: make(map[string]int),
		GeneratedAt:          time.Now(),
	}

	// Leads by stage and conversion rate.
	var leadRows []struct {
		Stage string `json:"stage"`
		Count int    `json:"count"`
	}
	err := s.db.Lead.Query().
		GroupBy(lead.FieldStage).
		Aggregate(ent.Count()).
		Scan(ctx, &leadRows)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by stage: %w", err)
	}
	totalLeads := 0
	for _, row := range leadRows {
		overview.LeadsByStage[row.Stage] = row.Count
		totalLeads += row.Count
	}

	converted, err := s.db.Lead.Query().
		Where(lead.ConvertedClientIDNotNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count converted leads: %w", err)
	}
	if totalLeads > 0 {
		overview.LeadConversionRate = round2(float64(converted) / float64(totalLeads) * 100)
	}

	// Clients by journey stage.
	var clientRows []struct {
		JourneyStage string `json:"journey_stage"`
		Count        int    `json:"count"`
	}
	err = s.db.Creator.Query().
		GroupBy(entclient.FieldJourneyStage).
		Aggregate(ent.Count()).
		Scan(ctx, &clientRows)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients by journey: %w", err)
	}
	for _, row := range clientRows {
		overview.ClientsByJourney[row.JourneyStage] = row.Count
	}

	// Health distribution and average. Status is derived from the
	// stored score per client.
	scores, err := s.db.Creator.Query().
		Select(entclient.FieldHealthScore).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch health scores: %w", err)
	}
	sum := 0
	for _, score := range scores {
		overview.HealthDistribution[health.StatusFor(s.thresholds, score)]++
		sum += score
	}
	if len(scores) > 0 {
		overview.AverageHealthScore = round2(float64(sum) / float64(len(scores)))
	}

	// Applications by status.
	var appRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = s.db.Application.Query().
		GroupBy(application.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &appRows)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications by status: %w", err)
	}
	for _, row := range appRows {
		overview.ApplicationsByStatus[row.Status] = row.Count
	}

	s.setCached(ctx, overviewCacheKey, overview)
	return overview, nil
}

// DocumentPerformance aggregates document lifecycle outcomes per
// program month across all clients.
func (s *Service) DocumentPerformance(ctx context.Context) (*models.DocumentPerformance, error) {
	var cached models.DocumentPerformance
	if s.getCached(ctx, performanceCacheKey, &cached) {
		return &cached, nil
	}

	perf := &models.DocumentPerformance{
		Months:      make([]models.MonthDocumentStats, 0, 8),
		GeneratedAt: time.Now(),
	}

	for month := 1; month <= 8; month++ {
		docs, err := s.db.Document.Query().
			Where(document.HasKitWith(onboardingkit.MonthEQ(month))).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch month %d documents: %w", month, err)
		}

		stats := models.MonthDocumentStats{Month: month}
		var latencySum float64
		for _, doc := range docs {
			stats.Generated++
			if doc.RevisionNotes != "" {
				stats.RevisionRequests++
			}
			if doc.Status == document.StatusApproved {
				stats.Approved++
				if doc.ApprovedAt != nil {
					latencySum += doc.ApprovedAt.Sub(doc.CreatedAt).Hours()
				}
			}
		}
		if stats.Generated > 0 {
			stats.ApprovalRate = round2(float64(stats.Approved) / float64(stats.Generated) * 100)
		}
		if stats.Approved > 0 {
			stats.AvgApprovalLatency = round2(latencySum / float64(stats.Approved))
		}
		perf.Months = append(perf.Months, stats)
	}

	s.setCached(ctx, performanceCacheKey, perf)
	return perf, nil
}

// InvalidateCache drops the cached analytics. Called by the nightly
// job before re-warming and available for tests.
func (s *Service) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, overviewCacheKey, performanceCacheKey); err != nil {
		log.Printf("⚠️ Failed to invalidate analytics cache: %v", err)
	}
}

func (s *Service) getCached(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("⚠️ Corrupt analytics cache entry %s: %v", key, err)
		return false
	}
	return true
}

func (s *Service) setCached(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), cacheTTL); err != nil {
		log.Printf("⚠️ Failed to cache analytics %s: %v", key, err)
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
