package applications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/models"
)

var (
	// ErrApplicationNotFound is returned when the application doesn't exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrAlreadyApplied is returned when a user submits a second application.
	ErrAlreadyApplied = errors.New("user already has an application")
	// ErrUploadTooLarge is returned when a PDF exceeds the size limit.
	ErrUploadTooLarge = errors.New("uploaded file exceeds size limit")
)

// Uploader stores application PDFs and returns their public URL.
type Uploader interface {
	UploadPDF(ctx context.Context, kind string, body io.Reader, size int64) (string, error)
}

// Mailer sends the application confirmation and admin notification.
type Mailer interface {
	SendApplicationConfirmation(toEmail, creatorName string) error
	SendAdminNotification(adminEmail, creatorName string, applicationID int) error
}

// Service handles accelerator applications.
type Service struct {
	db             *ent.Client
	storage        Uploader
	mailer         Mailer
	audit          *audit.Service
	adminNotifyTo  string
	maxUploadBytes int64
}

// NewService creates a new applications service.
func NewService(db *ent.Client, storage Uploader, mailer Mailer, auditSvc *audit.Service, adminNotifyTo string, maxUploadBytes int64) *Service {
	return &Service{
		db:             db,
		storage:        storage,
		mailer:         mailer,
		audit:          auditSvc,
		adminNotifyTo:  adminNotifyTo,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload is one PDF file part of a submission.
type Upload struct {
	Body io.Reader
	Size int64
}

// Create stores a new application. Submission is immediate: the record
// is created in under_review with submitted_at set, there is no draft
// state. Upload failure blocks the submission; email failure does not.
func (s *Service) Create(ctx context.Context, userID int, req models.ApplicationCreateRequest, pitchDeck, mediaKit *Upload) (*models.ApplicationResponse, error) {
	exists, err := s.db.Application.Query().
		Where(application.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	var pitchDeckURL, mediaKitURL string
	if pitchDeck != nil {
		pitchDeckURL, err = s.upload(ctx, "pitch-deck", pitchDeck)
		if err != nil {
			return nil, err
		}
	}
	if mediaKit != nil {
		mediaKitURL, err = s.upload(ctx, "media-kit", mediaKit)
		if err != nil {
			return nil, err
		}
	}

	builder := s.db.Application.Create().
		SetUserID(userID).
		SetCreatorName(req.CreatorName).
		SetYoutubeFollowers(req.YoutubeFollowers).
		SetTiktokFollowers(req.TiktokFollowers).
		SetInstagramFollowers(req.InstagramFollowers).
		SetProjectIdea(req.ProjectIdea).
		SetTargetAudience(req.TargetAudience).
		SetWhyJoin(req.WhyJoin).
		SetStatus(application.StatusUnderReview).
		SetSubmittedAt(time.Now())

	if req.YoutubeHandle != "" {
		builder = builder.SetYoutubeHandle(req.YoutubeHandle)
	}
	if req.TiktokHandle != "" {
		builder = builder.SetTiktokHandle(req.TiktokHandle)
	}
	if req.InstagramHandle != "" {
		builder = builder.SetInstagramHandle(req.InstagramHandle)
	}
	if req.Website != "" {
		builder = builder.SetWebsite(req.Website)
	}
	if pitchDeckURL != "" {
		builder = builder.SetPitchDeckURL(pitchDeckURL)
	}
	if mediaKitURL != "" {
		builder = builder.SetMediaKitURL(mediaKitURL)
	}

	app, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("✅ Application %d submitted by user %d (%s)", app.ID, userID, req.CreatorName)

	// Emails are a single best-effort attempt each; failure is logged
	// and otherwise ignored.
	if s.mailer != nil {
		s.sendEmails(ctx, userID, app)
	}

	resp := applicationResponse(app)
	return &resp, nil
}

func (s *Service) upload(ctx context.Context, kind string, u *Upload) (string, error) {
	if s.storage == nil {
		return "", nil
	}
	if s.maxUploadBytes > 0 && u.Size > s.maxUploadBytes {
		return "", ErrUploadTooLarge
	}
	url, err := s.storage.UploadPDF(ctx, kind, u.Body, u.Size)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", kind, err)
	}
	return url, nil
}

func (s *Service) sendEmails(ctx context.Context, userID int, app *ent.Application) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Failed to load applicant %d for confirmation email: %v", userID, err)
		return
	}

	if err := s.mailer.SendApplicationConfirmation(u.Email, app.CreatorName); err != nil {
		log.Printf("⚠️ Failed to send application confirmation to %s: %v", u.Email, err)
	}
	if s.adminNotifyTo != "" {
		if err := s.mailer.SendAdminNotification(s.adminNotifyTo, app.CreatorName, app.ID); err != nil {
			log.Printf("⚠️ Failed to send admin notification: %v", err)
		}
	}
}

// GetForUser returns the caller's own application, if any.
func (s *Service) GetForUser(ctx context.Context, userID int) (*models.ApplicationResponse, error) {
	app, err := s.db.Application.Query().
		Where(application.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	resp := applicationResponse(app)
	return &resp, nil
}

// Get fetches an application by ID (admin).
func (s *Service) Get(ctx context.Context, applicationID int) (*models.ApplicationResponse, error) {
	app, err := s.db.Application.Get(ctx, applicationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	resp := applicationResponse(app)
	return &resp, nil
}

// ListFilters narrows List results.
type ListFilters struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// List returns applications for the admin review queue, newest first.
func (s *Service) List(ctx context.Context, filters ListFilters) (*models.ApplicationListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 20
	}

	query := s.db.Application.Query()
	if filters.Status != "" {
		query = query.Where(application.StatusEQ(application.Status(filters.Status)))
	}
	if filters.Search != "" {
		query = query.Where(application.CreatorNameContainsFold(filters.Search))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	results, err := query.
		Order(ent.Desc(application.FieldCreatedAt)).
		Offset((filters.Page - 1) * filters.Limit).
		Limit(filters.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	resp := &models.ApplicationListResponse{
		Data: make([]models.ApplicationResponse, 0, len(results)),
	}
	for _, app := range results {
		resp.Data = append(resp.Data, applicationResponse(app))
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

// Review applies an admin's review patch: status decision, notes, tags.
func (s *Service) Review(ctx context.Context, adminID, applicationID int, req models.ApplicationReviewRequest) (*models.ApplicationResponse, error) {
	app, err := s.db.Application.Get(ctx, applicationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}

	update := app.Update()
	if req.Status != "" {
		update = update.SetStatus(application.Status(req.Status))
	}
	if req.AdminNotes != nil {
		update = update.SetAdminNotes(*req.AdminNotes)
	}
	if req.Tags != nil {
		cleaned := make([]string, 0, len(req.Tags))
		for _, tag := range req.Tags {
			if t := strings.TrimSpace(tag); t != "" {
				cleaned = append(cleaned, t)
			}
		}
		update = update.SetTags(cleaned)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	s.audit.LogApplicationReviewed(ctx, adminID, applicationID, string(updated.Status))

	resp := applicationResponse(updated)
	return &resp, nil
}

// CountsByStatus returns how many applications sit in each status.
func (s *Service) CountsByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.db.Application.Query().
		GroupBy(application.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ExportXLSX renders the full application list as a spreadsheet for the
// review team.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	apps, err := s.db.Application.Query().
		Order(ent.Desc(application.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{
		"ID", "Creator", "YouTube", "TikTok", "Instagram",
		"YT Followers", "TT Followers", "IG Followers", "Website",
		"Status", "Tags", "Submitted At",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, app := range apps {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), app.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), app.CreatorName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), app.YoutubeHandle)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), app.TiktokHandle)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), app.InstagramHandle)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), app.YoutubeFollowers)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), app.TiktokFollowers)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), app.InstagramFollowers)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), app.Website)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), string(app.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), strings.Join(app.Tags, ", "))
		if app.SubmittedAt != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), app.SubmittedAt.Format(time.RFC3339))
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 16)
	}
	f.SetActiveSheet(index)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func applicationResponse(app *ent.Application) models.ApplicationResponse {
	return models.ApplicationResponse{
		ID:                 app.ID,
		CreatorName:        app.CreatorName,
		YoutubeHandle:      app.YoutubeHandle,
		TiktokHandle:       app.TiktokHandle,
		InstagramHandle:    app.InstagramHandle,
		YoutubeFollowers:   app.YoutubeFollowers,
		TiktokFollowers:    app.TiktokFollowers,
		InstagramFollowers: app.InstagramFollowers,
		Website:            app.Website,
		ProjectIdea:        app.ProjectIdea,
		TargetAudience:     app.TargetAudience,
		WhyJoin:            app.WhyJoin,
		PitchDeckURL:       app.PitchDeckURL,
		MediaKitURL:        app.MediaKitURL,
		Status:             string(app.Status),
		AdminNotes:         app.AdminNotes,
		Tags:               app.Tags,
		SubmittedAt:        app.SubmittedAt,
		CreatedAt:          app.CreatedAt,
	}
}
