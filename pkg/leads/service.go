package leads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/leadstagehistory"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/leadanalysis"
	"github.com/creatorbridge/api/pkg/models"
)

var (
	// ErrLeadNotFound is returned when the lead doesn't exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrAlreadyConverted is returned when converting a lead twice.
	ErrAlreadyConverted = errors.New("lead already converted")
)

// Service handles lead pipeline operations.
type Service struct {
	db       *ent.Client
	analysis *leadanalysis.Service
	audit    *audit.Service
}

// NewService creates a new leads service.
func NewService(db *ent.Client, analysis *leadanalysis.Service, auditSvc *audit.Service) *Service {
	return &Service{db: db, analysis: analysis, audit: auditSvc}
}

// ListFilters narrows List results.
type ListFilters struct {
	Stage  string
	Search string
	Page   int
	Limit  int
}

// Create creates a lead and kicks off fit analysis in the background.
// Analysis failure never blocks creation: the lead simply stays
// unanalyzed (fit_score null) until an explicit re-analyze.
func (s *Service) Create(ctx context.Context, req models.LeadCreateRequest) (*models.LeadResponse, error) {
	builder := s.db.Lead.Create().
		SetName(req.Name)

	if req.Email != "" {
		builder = builder.SetEmail(req.Email)
	}
	if req.Company != "" {
		builder = builder.SetCompany(req.Company)
	}
	if req.Source != "" {
		builder = builder.SetSource(req.Source)
	}
	if req.Summary != "" {
		builder = builder.SetSummary(req.Summary)
	}
	if len(req.Answers) > 0 {
		builder = builder.SetAnswers(req.Answers)
	}

	l, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	// Fire and forget. The goroutine gets its own context so the
	// analysis survives the request ending.
	if s.analysis != nil {
		go func(leadID int) {
			analysisCtx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
			defer cancel()
			if err := s.analysis.Analyze(analysisCtx, leadID); err != nil {
				log.Printf("⚠️ Background analysis failed for lead %d: %v", leadID, err)
			}
		}(l.ID)
	}

	resp := leadResponse(l)
	return &resp, nil
}

// Get fetches a single lead by ID.
func (s *Service) Get(ctx context.Context, leadID int) (*models.LeadResponse, error) {
	l, err := s.db.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	resp := leadResponse(l)
	return &resp, nil
}

// List returns leads matching the filters, newest first.
func (s *Service) List(ctx context.Context, filters ListFilters) (*models.LeadListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 20
	}

	query := s.db.Lead.Query()
	if filters.Stage != "" {
		query = query.Where(lead.StageEQ(lead.Stage(filters.Stage)))
	}
	if filters.Search != "" {
		query = query.Where(lead.Or(
			lead.NameContainsFold(filters.Search),
			lead.EmailContainsFold(filters.Search),
			lead.CompanyContainsFold(filters.Search),
		))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	results, err := query.
		Order(ent.Desc(lead.FieldCreatedAt)).
		Offset((filters.Page - 1) * filters.Limit).
		Limit(filters.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	resp := &models.LeadListResponse{
		Data:       make([]models.LeadResponse, 0, len(results)),
		Pagination: paginationInfo(filters.Page, filters.Limit, total),
	}
	for _, l := range results {
		resp.Data = append(resp.Data, leadResponse(l))
	}
	return resp, nil
}

// UpdateStage moves a lead through the pipeline and records the change
// in stage history inside one transaction. Setting the current stage
// again is a no-op.
func (s *Service) UpdateStage(ctx context.Context, leadID, userID int, req models.LeadStageUpdateRequest) (*models.LeadResponse, error) {
	current, err := s.db.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	if current.Stage == lead.Stage(req.Stage) {
		resp := leadResponse(current)
		return &resp, nil
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	oldStage := current.Stage
	now := time.Now()

	updated, err := tx.Lead.UpdateOne(current).
		SetStage(lead.Stage(req.Stage)).
		SetStageChangedAt(now).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead stage: %w", err)
	}

	historyBuilder := tx.LeadStageHistory.Create().
		SetLeadID(leadID).
		SetUserID(userID).
		SetOldStage(leadstagehistory.OldStage(oldStage)).
		SetNewStage(leadstagehistory.NewStage(req.Stage))
	if req.Reason != "" {
		historyBuilder = historyBuilder.SetReason(req.Reason)
	}
	if _, err := historyBuilder.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create stage history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.audit.LogLeadStageChanged(ctx, userID, leadID, string(oldStage), req.Stage)

	resp := leadResponse(updated)
	return &resp, nil
}

// GetStageHistory returns the stage changes for a lead, newest first.
func (s *Service) GetStageHistory(ctx context.Context, leadID int) ([]models.LeadStageHistoryResponse, error) {
	exists, err := s.db.Lead.Query().Where(lead.ID(leadID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}
	if !exists {
		return nil, ErrLeadNotFound
	}

	history, err := s.db.LeadStageHistory.Query().
		Where(leadstagehistory.LeadID(leadID)).
		WithUser().
		Order(ent.Desc(leadstagehistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stage history: %w", err)
	}

	resp := make([]models.LeadStageHistoryResponse, 0, len(history))
	for _, h := range history {
		entry := models.LeadStageHistoryResponse{
			ID:        h.ID,
			LeadID:    h.LeadID,
			UserID:    h.UserID,
			NewStage:  string(h.NewStage),
			CreatedAt: h.CreatedAt,
		}
		if h.OldStage != nil {
			old := string(*h.OldStage)
			entry.OldStage = &old
		}
		if h.Reason != "" {
			entry.Reason = &h.Reason
		}
		if h.Edges.User != nil {
			entry.UserName = h.Edges.User.Name
		}
		resp = append(resp, entry)
	}
	return resp, nil
}

// Reanalyze runs fit analysis synchronously for a lead that failed or
// was never analyzed.
func (s *Service) Reanalyze(ctx context.Context, leadID int) (*models.LeadResponse, error) {
	if s.analysis == nil {
		return nil, leadanalysis.ErrNoAnalyzer
	}
	if err := s.analysis.Analyze(ctx, leadID); err != nil {
		if errors.Is(err, leadanalysis.ErrLeadNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return s.Get(ctx, leadID)
}

// Convert turns a lead into a client. The conversion is one-way: once
// converted_client_id is set it is never cleared, and converting again
// is rejected. The new client starts in foundation with its month 1
// kit row ready to generate.
func (s *Service) Convert(ctx context.Context, leadID, userID int) (*models.ClientResponse, error) {
	l, err := s.db.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	if l.ConvertedClientID != nil {
		return nil, ErrAlreadyConverted
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	clientBuilder := tx.Creator.Create().
		SetName(l.Name).
		SetConvertedFromLeadID(leadID)
	if l.Email != "" {
		clientBuilder = clientBuilder.SetEmail(l.Email)
	}
	if l.Company != "" {
		clientBuilder = clientBuilder.SetCompany(l.Company)
	}

	cl, err := clientBuilder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	// Month 1 kit row is created up front so the onboarding view has a
	// real row to generate into.
	if _, err := tx.OnboardingKit.Create().
		SetClientID(cl.ID).
		SetMonth(1).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create month 1 kit: %w", err)
	}

	oldStage := l.Stage
	now := time.Now()
	leadUpdate := tx.Lead.UpdateOne(l).
		SetConvertedClientID(cl.ID)
	if oldStage != lead.StageOnboarded {
		leadUpdate = leadUpdate.
			SetStage(lead.StageOnboarded).
			SetStageChangedAt(now)
	}
	if _, err := leadUpdate.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	if oldStage != lead.StageOnboarded {
		if _, err := tx.LeadStageHistory.Create().
			SetLeadID(leadID).
			SetUserID(userID).
			SetOldStage(leadstagehistory.OldStage(oldStage)).
			SetNewStage(leadstagehistory.NewStageOnboarded).
			SetReason("converted to client").
			Save(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create stage history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Converted lead %d to client %d", leadID, cl.ID)
	s.audit.LogLeadConverted(ctx, userID, leadID, cl.ID)

	return &models.ClientResponse{
		ID:              cl.ID,
		Name:            cl.Name,
		Email:           cl.Email,
		Company:         cl.Company,
		JourneyStage:    string(cl.JourneyStage),
		JourneyProgress: cl.JourneyProgress,
		CreatedAt:       cl.CreatedAt,
	}, nil
}

// CountsByStage returns how many leads sit in each pipeline stage.
func (s *Service) CountsByStage(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Stage string `json:"stage"`
		Count int    `json:"count"`
	}
	err := s.db.Lead.Query().
		GroupBy(lead.FieldStage).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by stage: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Stage] = row.Count
	}
	return counts, nil
}

func leadResponse(l *ent.Lead) models.LeadResponse {
	return models.LeadResponse{
		ID:                        l.ID,
		Name:                      l.Name,
		Email:                     l.Email,
		Company:                   l.Company,
		Source:                    l.Source,
		Summary:                   l.Summary,
		Answers:                   l.Answers,
		Stage:                     string(l.Stage),
		StageChangedAt:            l.StageChangedAt,
		FitScore:                  l.FitScore,
		SentimentScore:            l.SentimentScore,
		AISummary:                 l.AiSummary,
		Strengths:                 l.Strengths,
		Concerns:                  l.Concerns,
		Recommendations:           l.Recommendations,
		EstimatedRevenuePotential: l.EstimatedRevenuePotential,
		AnalyzedAt:                l.AnalyzedAt,
		ConvertedClientID:         l.ConvertedClientID,
		CreatedAt:                 l.CreatedAt,
	}
}

func paginationInfo(page, limit, total int) models.PaginationInfo {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return models.PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
