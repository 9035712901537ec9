package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/auditlog"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/enttest"
	"github.com/creatorbridge/api/pkg/audit"

	_ "github.com/mattn/go-sqlite3"
)

// stubLLM returns canned content, or an error when failing is set.
type stubLLM struct {
	content string
	failing bool
	calls   int
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	s.calls++
	if s.failing {
		return "", errors.New("model unavailable")
	}
	return s.content, nil
}

func setupTest(t *testing.T) (*ent.Client, *Service, *stubLLM) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	// Audit rows reference the acting user, so seed one before anything writes.
	db.User.Create().
		SetEmail("admin@creatorbridge.io").
		SetName("Admin").
		SaveX(context.Background())

	llm := &stubLLM{content: "# Generated\n\nsome markdown"}
	svc := NewService(db, llm, audit.NewService(db))
	return db, svc, llm
}

func createClient(t *testing.T, db *ent.Client) int {
	cl := db.Creator.Create().SetName("Test Creator").SaveX(context.Background())
	return cl.ID
}

// approveMonth drives every document of a month to approved.
func approveMonth(t *testing.T, svc *Service, clientID, month int) {
	t.Helper()
	for slot := 1; slot <= DocumentsPerMonth; slot++ {
		_, err := svc.Approve(context.Background(), clientID, month, slot, 1)
		require.NoError(t, err)
	}
}

func TestGenerateMonth(t *testing.T) {
	db, svc, llm := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	mr, err := svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)

	assert.True(t, mr.Generated)
	assert.NotNil(t, mr.GeneratedAt)
	assert.Len(t, mr.Documents, DocumentsPerMonth)
	for i, doc := range mr.Documents {
		assert.Equal(t, i+1, doc.Slot)
		assert.Equal(t, string(document.StatusGenerated), doc.Status)
	}
	assert.Equal(t, DocumentsPerMonth, llm.calls)

	// Audit trail records the generation with the acting user attached.
	entry := db.AuditLog.Query().
		Where(auditlog.ActionEQ(auditlog.ActionMonthGenerated)).
		OnlyX(ctx)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, 1, *entry.UserID)
}

func TestGenerateMonth_LLMFailureFallsBack(t *testing.T) {
	db, svc, llm := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)
	llm.failing = true

	mr, err := svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)
	assert.Len(t, mr.Documents, DocumentsPerMonth)

	// All five documents exist with template content.
	docs := db.Document.Query().AllX(ctx)
	require.Len(t, docs, DocumentsPerMonth)
	for _, doc := range docs {
		assert.Contains(t, doc.Content, doc.Name)
		assert.Contains(t, doc.Content, "Test Creator")
	}
}

func TestGenerateMonth_AlreadyGenerated(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	_, err := svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)

	_, err = svc.GenerateMonth(ctx, clientID, 1, 1)
	assert.ErrorIs(t, err, ErrAlreadyGenerated)
}

func TestGenerateMonth_LockedMonth(t *testing.T) {
	db, svc, _ := setupTest(t)
	clientID := createClient(t, db)

	_, err := svc.GenerateMonth(context.Background(), clientID, 2, 1)
	assert.ErrorIs(t, err, ErrMonthLocked)
}

func TestGenerateMonth_UnlocksAfterApproval(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	_, err := svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)

	// Four approvals are not enough.
	for slot := 1; slot <= 4; slot++ {
		_, err := svc.Approve(ctx, clientID, 1, slot, 1)
		require.NoError(t, err)
	}
	_, err = svc.GenerateMonth(ctx, clientID, 2, 1)
	assert.ErrorIs(t, err, ErrMonthLocked)

	_, err = svc.Approve(ctx, clientID, 1, 5, 1)
	require.NoError(t, err)

	_, err = svc.GenerateMonth(ctx, clientID, 2, 1)
	assert.NoError(t, err)
}

func TestGenerateMonth_InvalidInputs(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	_, err := svc.GenerateMonth(ctx, clientID, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = svc.GenerateMonth(ctx, clientID, 9, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = svc.GenerateMonth(ctx, 9999, 1, 1)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDocumentLifecycle(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	_, err := svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)

	// Viewed before sent is rejected.
	_, err = svc.MarkViewed(ctx, clientID, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	doc, err := svc.MarkSent(ctx, clientID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, string(document.StatusSent), doc.Status)

	// Sending twice is rejected.
	_, err = svc.MarkSent(ctx, clientID, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	doc, err = svc.MarkViewed(ctx, clientID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, string(document.StatusViewed), doc.Status)

	doc, err = svc.Approve(ctx, clientID, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, string(document.StatusApproved), doc.Status)
	assert.NotNil(t, doc.ApprovedAt)

	// approved is terminal.
	_, err = svc.Approve(ctx, clientID, 1, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.RequestRevision(ctx, clientID, 1, 1, "please redo", 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRequestRevision(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	_, err := svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)

	// Empty and whitespace-only notes are rejected, state unchanged.
	for _, notes := range []string{"", "   ", "\n\t"} {
		_, err := svc.RequestRevision(ctx, clientID, 1, 2, notes, 1)
		assert.ErrorIs(t, err, ErrEmptyRevisionNotes)
	}
	current, err := svc.findDocument(ctx, clientID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, document.StatusGenerated, current.Status)

	doc, err := svc.RequestRevision(ctx, clientID, 1, 2, "tone is off", 1)
	require.NoError(t, err)
	assert.Equal(t, string(document.StatusRevisionRequested), doc.Status)
	assert.Equal(t, "tone is off", doc.RevisionNotes)
}

func TestRegenerate(t *testing.T) {
	db, svc, llm := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	_, err := svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)

	// Only revision_requested documents can be regenerated.
	_, err = svc.Regenerate(ctx, clientID, 1, 3)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.RequestRevision(ctx, clientID, 1, 3, "add examples", 1)
	require.NoError(t, err)

	llm.content = "# Revised\n\nwith examples"
	doc, err := svc.Regenerate(ctx, clientID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, string(document.StatusGenerated), doc.Status)

	stored := db.Document.GetX(ctx, doc.ID)
	assert.Equal(t, "# Revised\n\nwith examples", stored.Content)
}

func TestDownload(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	_, _, err := svc.Download(ctx, clientID, 1, 1)
	assert.ErrorIs(t, err, ErrNotGenerated)

	_, err = svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)

	filename, content, err := svc.Download(ctx, clientID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "welcome-program-overview.md", filename)
	assert.NotEmpty(t, content)
}

func TestGetKit_DerivedState(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	// Before anything is generated: month 1 unlocked and current,
	// months 2-8 locked placeholders.
	kit, err := svc.GetKit(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, kit.Months, MonthCount)
	assert.Equal(t, 1, kit.CurrentMonth)
	assert.False(t, kit.Months[0].Locked)
	for _, m := range kit.Months[1:] {
		assert.True(t, m.Locked, "month %d", m.Month)
	}
	for _, doc := range kit.Months[0].Documents {
		assert.Equal(t, string(document.StatusNotGenerated), doc.Status)
	}

	// Complete month 1: month 2 unlocks and becomes current.
	_, err = svc.GenerateMonth(ctx, clientID, 1, 1)
	require.NoError(t, err)
	approveMonth(t, svc, clientID, 1)

	kit, err = svc.GetKit(ctx, clientID)
	require.NoError(t, err)
	assert.True(t, kit.Months[0].Complete)
	assert.False(t, kit.Months[1].Locked)
	assert.True(t, kit.Months[2].Locked)
	assert.Equal(t, 2, kit.CurrentMonth)
}

func TestGetKit_AllComplete(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()
	clientID := createClient(t, db)

	for month := 1; month <= MonthCount; month++ {
		_, err := svc.GenerateMonth(ctx, clientID, month, 1)
		require.NoError(t, err)
		approveMonth(t, svc, clientID, month)
	}

	kit, err := svc.GetKit(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, MonthCount, kit.CurrentMonth)
	for _, m := range kit.Months {
		assert.False(t, m.Locked)
		assert.True(t, m.Complete)
	}
}
