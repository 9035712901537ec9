package applications

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/application"
	"github.com/creatorbridge/api/ent/auditlog"
	"github.com/creatorbridge/api/ent/enttest"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

type stubUploader struct {
	uploads map[string]string
	err     error
}

func (s *stubUploader) UploadPDF(ctx context.Context, kind string, body io.Reader, size int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	url := "https://storage.example.com/applications/" + kind + ".pdf"
	if s.uploads == nil {
		s.uploads = make(map[string]string)
	}
	s.uploads[kind] = url
	return url, nil
}

type stubMailer struct {
	confirmations []string
	adminNotices  []int
	err           error
}

func (s *stubMailer) SendApplicationConfirmation(toEmail, creatorName string) error {
	if s.err != nil {
		return s.err
	}
	s.confirmations = append(s.confirmations, toEmail)
	return nil
}

func (s *stubMailer) SendAdminNotification(adminEmail, creatorName string, applicationID int) error {
	if s.err != nil {
		return s.err
	}
	s.adminNotices = append(s.adminNotices, applicationID)
	return nil
}

func setupTest(t *testing.T) (*ent.Client, *Service, *stubUploader, *stubMailer) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	uploader := &stubUploader{}
	mailer := &stubMailer{}
	svc := NewService(db, uploader, mailer, audit.NewService(db), "team@creatorbridge.io", 10<<20)
	return db, svc, uploader, mailer
}

func createUser(t *testing.T, db *ent.Client, email string) int {
	u := db.User.Create().SetEmail(email).SetName("Applicant").SaveX(context.Background())
	return u.ID
}

func validRequest() models.ApplicationCreateRequest {
	return models.ApplicationCreateRequest{
		CreatorName:      "Maya Vlogs",
		YoutubeHandle:    "@mayavlogs",
		YoutubeFollowers: 200000,
		ProjectIdea:      "A course on video production",
		TargetAudience:   "Aspiring tech YouTubers",
		WhyJoin:          "Ready to turn my channel into a business",
	}
}

func TestCreate_AutoSubmits(t *testing.T) {
	db, svc, _, mailer := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db, "maya@example.com")

	resp, err := svc.Create(ctx, userID, validRequest(), nil, nil)
	require.NoError(t, err)

	// There is no draft state: submission is immediate.
	assert.Equal(t, string(application.StatusUnderReview), resp.Status)
	require.NotNil(t, resp.SubmittedAt)

	// Both emails went out, best effort.
	assert.Equal(t, []string{"maya@example.com"}, mailer.confirmations)
	assert.Equal(t, []int{resp.ID}, mailer.adminNotices)
}

func TestCreate_WithUploads(t *testing.T) {
	db, svc, uploader, _ := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db, "maya@example.com")

	pdf := []byte("%PDF-1.4 fake")
	resp, err := svc.Create(ctx, userID, validRequest(),
		&Upload{Body: bytes.NewReader(pdf), Size: int64(len(pdf))},
		&Upload{Body: bytes.NewReader(pdf), Size: int64(len(pdf))},
	)
	require.NoError(t, err)

	assert.Equal(t, uploader.uploads["pitch-deck"], resp.PitchDeckURL)
	assert.Equal(t, uploader.uploads["media-kit"], resp.MediaKitURL)
}

func TestCreate_UploadFailureBlocks(t *testing.T) {
	db, svc, uploader, _ := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db, "maya@example.com")
	uploader.err = errors.New("s3 unavailable")

	pdf := []byte("%PDF-1.4 fake")
	_, err := svc.Create(ctx, userID, validRequest(),
		&Upload{Body: bytes.NewReader(pdf), Size: int64(len(pdf))}, nil)
	require.Error(t, err)

	// Nothing was persisted.
	n := db.Application.Query().CountX(ctx)
	assert.Zero(t, n)
}

func TestCreate_UploadTooLarge(t *testing.T) {
	db, svc, _, _ := setupTest(t)
	userID := createUser(t, db, "maya@example.com")

	_, err := svc.Create(context.Background(), userID, validRequest(),
		&Upload{Body: strings.NewReader("big"), Size: 11 << 20}, nil)
	assert.ErrorIs(t, err, ErrUploadTooLarge)
}

func TestCreate_EmailFailureTolerated(t *testing.T) {
	db, svc, _, mailer := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db, "maya@example.com")
	mailer.err = errors.New("sendgrid down")

	resp, err := svc.Create(ctx, userID, validRequest(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, string(application.StatusUnderReview), resp.Status)
}

func TestCreate_SecondApplicationRejected(t *testing.T) {
	db, svc, _, _ := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db, "maya@example.com")

	_, err := svc.Create(ctx, userID, validRequest(), nil, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, userID, validRequest(), nil, nil)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestReview(t *testing.T) {
	db, svc, _, _ := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db, "maya@example.com")
	adminID := createUser(t, db, "admin@creatorbridge.io")

	app, err := svc.Create(ctx, userID, validRequest(), nil, nil)
	require.NoError(t, err)

	notes := "Strong video presence"
	reviewed, err := svc.Review(ctx, adminID, app.ID, models.ApplicationReviewRequest{
		Status:     "accepted",
		AdminNotes: &notes,
		Tags:       []string{"strong-video", " needs-followup ", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "accepted", reviewed.Status)
	assert.Equal(t, "Strong video presence", reviewed.AdminNotes)
	assert.Equal(t, []string{"strong-video", "needs-followup"}, reviewed.Tags)

	n := db.AuditLog.Query().
		Where(auditlog.ActionEQ(auditlog.ActionApplicationReviewed)).
		CountX(ctx)
	assert.Equal(t, 1, n)
}

func TestReview_NotFound(t *testing.T) {
	_, svc, _, _ := setupTest(t)
	_, err := svc.Review(context.Background(), 1, 9999, models.ApplicationReviewRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	db, svc, _, _ := setupTest(t)
	ctx := context.Background()

	for i, status := range []application.Status{
		application.StatusUnderReview,
		application.StatusAccepted,
		application.StatusUnderReview,
	} {
		userID := createUser(t, db, string(rune('a'+i))+"@example.com")
		db.Application.Create().
			SetUserID(userID).
			SetCreatorName("Creator").
			SetProjectIdea("An idea worth reviewing").
			SetTargetAudience("Some audience").
			SetWhyJoin("Because it helps").
			SetStatus(status).
			SaveX(ctx)
	}

	resp, err := svc.List(ctx, ListFilters{Status: "under_review"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestExportXLSX(t *testing.T) {
	db, svc, _, _ := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db, "maya@example.com")

	_, err := svc.Create(ctx, userID, validRequest(), nil, nil)
	require.NoError(t, err)

	data, err := svc.ExportXLSX(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Creator", rows[0][1])
	assert.Equal(t, "Maya Vlogs", rows[1][1])
}
