package clients

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/activity"
	entclient "github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/milestone"
	"github.com/creatorbridge/api/pkg/health"
	"github.com/creatorbridge/api/pkg/models"
)

var (
	// ErrClientNotFound is returned when the client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrMilestoneNotFound is returned when the milestone doesn't exist.
	ErrMilestoneNotFound = errors.New("milestone not found")
)

// Service handles client CRM operations. Health status is always
// derived from the stored score via the configured thresholds; it is
// never persisted.
type Service struct {
	db     *ent.Client
	health *health.Service
}

// NewService creates a new clients service.
func NewService(db *ent.Client, healthSvc *health.Service) *Service {
	return &Service{db: db, health: healthSvc}
}

// ListFilters narrows List results.
type ListFilters struct {
	JourneyStage string
	HealthStatus string
	Search       string
	Page         int
	Limit        int
}

// Get fetches a single client.
func (s *Service) Get(ctx context.Context, clientID int) (*models.ClientResponse, error) {
	cl, err := s.db.Creator.Get(ctx, clientID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	resp := s.clientResponse(cl)
	return &resp, nil
}

// List returns clients matching the filters. The health-status filter
// is applied after the query since status is derived, not stored.
func (s *Service) List(ctx context.Context, filters ListFilters) (*models.ClientListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 20
	}

	query := s.db.Creator.Query()
	if filters.JourneyStage != "" {
		query = query.Where(entclient.JourneyStageEQ(entclient.JourneyStage(filters.JourneyStage)))
	}
	if filters.Search != "" {
		query = query.Where(entclient.Or(
			entclient.NameContainsFold(filters.Search),
			entclient.EmailContainsFold(filters.Search),
			entclient.CompanyContainsFold(filters.Search),
		))
	}
	if filters.HealthStatus != "" {
		// Translate the derived status back into a score range so the
		// filter still happens in the database.
		th := s.health.Thresholds()
		switch filters.HealthStatus {
		case health.StatusGreen:
			query = query.Where(entclient.HealthScoreGTE(th.GreenMin))
		case health.StatusYellow:
			query = query.Where(
				entclient.HealthScoreGTE(th.YellowMin),
				entclient.HealthScoreLT(th.GreenMin),
			)
		case health.StatusRed:
			query = query.Where(entclient.HealthScoreLT(th.YellowMin))
		}
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	results, err := query.
		Order(ent.Desc(entclient.FieldCreatedAt)).
		Offset((filters.Page - 1) * filters.Limit).
		Limit(filters.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	resp := &models.ClientListResponse{
		Data: make([]models.ClientResponse, 0, len(results)),
	}
	for _, cl := range results {
		resp.Data = append(resp.Data, s.clientResponse(cl))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filters.Limit)))
	resp.Pagination = models.PaginationInfo{
		Page:       filters.Page,
		Limit:      filters.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    filters.Page < totalPages,
		HasPrev:    filters.Page > 1,
	}
	return resp, nil
}

// Update patches journey stage and progress.
func (s *Service) Update(ctx context.Context, clientID int, req models.ClientUpdateRequest) (*models.ClientResponse, error) {
	cl, err := s.db.Creator.Get(ctx, clientID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	update := cl.Update()
	if req.JourneyStage != nil {
		update = update.SetJourneyStage(entclient.JourneyStage(*req.JourneyStage))
	}
	if req.JourneyProgress != nil {
		update = update.SetJourneyProgress(*req.JourneyProgress)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	// Progress feeds a health sub-score, so changing it refreshes the score.
	if req.JourneyProgress != nil {
		s.recomputeHealth(ctx, clientID)
		return s.Get(ctx, clientID)
	}

	resp := s.clientResponse(updated)
	return &resp, nil
}

// CreateMilestone adds a milestone to a client.
func (s *Service) CreateMilestone(ctx context.Context, clientID int, req models.MilestoneCreateRequest) (*models.MilestoneResponse, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	builder := s.db.Milestone.Create().
		SetClientID(clientID).
		SetTitle(req.Title)
	if req.DueDate != nil {
		builder = builder.SetDueDate(*req.DueDate)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}

	s.recomputeHealth(ctx, clientID)

	resp := milestoneResponse(m)
	return &resp, nil
}

// ListMilestones returns a client's milestones, oldest first.
func (s *Service) ListMilestones(ctx context.Context, clientID int) ([]models.MilestoneResponse, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	results, err := s.db.Milestone.Query().
		Where(milestone.ClientID(clientID)).
		Order(ent.Asc(milestone.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	resp := make([]models.MilestoneResponse, 0, len(results))
	for _, m := range results {
		resp = append(resp, milestoneResponse(m))
	}
	return resp, nil
}

// UpdateMilestoneStatus patches a milestone's status. Completing sets
// completed_at; leaving completed clears it. Either way the health
// score is recomputed since milestone completion feeds a sub-score.
func (s *Service) UpdateMilestoneStatus(ctx context.Context, clientID, milestoneID int, status string) (*models.MilestoneResponse, error) {
	m, err := s.db.Milestone.Query().
		Where(milestone.ID(milestoneID), milestone.ClientID(clientID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("failed to fetch milestone: %w", err)
	}

	update := m.Update().SetStatus(milestone.Status(status))
	if status == string(milestone.StatusCompleted) {
		update = update.SetCompletedAt(time.Now())
	} else {
		update = update.ClearCompletedAt()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}

	s.recomputeHealth(ctx, clientID)

	resp := milestoneResponse(updated)
	return &resp, nil
}

// CreateActivity records an activity against a client.
func (s *Service) CreateActivity(ctx context.Context, clientID int, req models.ActivityCreateRequest) (*models.ActivityResponse, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	a, err := s.db.Activity.Create().
		SetClientID(clientID).
		SetType(activity.Type(req.Type)).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	resp := activityResponse(a)
	return &resp, nil
}

// ListActivities returns a client's activities, newest first.
func (s *Service) ListActivities(ctx context.Context, clientID int, limit int) ([]models.ActivityResponse, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	results, err := s.db.Activity.Query().
		Where(activity.ClientID(clientID)).
		Order(ent.Desc(activity.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	resp := make([]models.ActivityResponse, 0, len(results))
	for _, a := range results {
		resp = append(resp, activityResponse(a))
	}
	return resp, nil
}

func (s *Service) ensureClient(ctx context.Context, clientID int) error {
	exists, err := s.db.Creator.Query().Where(entclient.ID(clientID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to query client: %w", err)
	}
	if !exists {
		return ErrClientNotFound
	}
	return nil
}

func (s *Service) recomputeHealth(ctx context.Context, clientID int) {
	if s.health == nil {
		return
	}
	if _, err := s.health.Recompute(ctx, clientID); err != nil {
		log.Printf("⚠️ Health recompute failed for client %d: %v", clientID, err)
	}
}

func (s *Service) clientResponse(cl *ent.Creator) models.ClientResponse {
	resp := models.ClientResponse{
		ID:              cl.ID,
		Name:            cl.Name,
		Email:           cl.Email,
		Company:         cl.Company,
		JourneyStage:    string(cl.JourneyStage),
		JourneyProgress: cl.JourneyProgress,
		HealthScore:     cl.HealthScore,
		HealthStatus:    health.StatusFor(s.health.Thresholds(), cl.HealthScore),
		HealthUpdatedAt: cl.HealthUpdatedAt,
		CreatedAt:       cl.CreatedAt,
	}
	if len(cl.HealthFactors) > 0 {
		resp.HealthFactors = make(map[string]models.HealthFactorInfo, len(cl.HealthFactors))
		for name, f := range cl.HealthFactors {
			resp.HealthFactors[name] = models.HealthFactorInfo{Score: f.Score, Weight: f.Weight}
		}
	}
	return resp
}

func milestoneResponse(m *ent.Milestone) models.MilestoneResponse {
	return models.MilestoneResponse{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Title:       m.Title,
		Status:      string(m.Status),
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func activityResponse(a *ent.Activity) models.ActivityResponse {
	return models.ActivityResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		Type:        string(a.Type),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}
